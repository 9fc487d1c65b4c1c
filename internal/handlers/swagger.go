package handlers

// @title Commission Reporting API
// @version 1.0
// @description Manages personnel, commission profiles and daily sales, and produces the monthly management overview and commission payout reports as JSON or CSV.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api

// @tag.name personnel
// @tag.description Personnel management operations

// @tag.name commission-profiles
// @tag.description Commission profile operations

// @tag.name sales
// @tag.description Daily sales records

// @tag.name reports
// @tag.description Monthly management overview and commission payout reports
