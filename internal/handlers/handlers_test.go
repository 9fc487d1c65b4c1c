package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commission-reporting-api/internal/database"
	"commission-reporting-api/internal/fixtures"
	"commission-reporting-api/internal/repositories/sqlite"
	"commission-reporting-api/internal/services"
)

var testNow = time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

type failingHealth struct{}

func (failingHealth) Health(context.Context) error {
	return errors.New("database is locked")
}

type testServer struct {
	router   *gin.Engine
	services *services.ServiceContainer
}

func init() {
	gin.SetMode(gin.TestMode)
}

func setupServer(t *testing.T, seed bool) *testServer {
	t.Helper()
	ctx := context.Background()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	dbPath := filepath.Join(t.TempDir(), "handlers.db")
	require.NoError(t, database.NewMigrationManager(dbPath, logger).RunMigrations(ctx))

	db, err := database.Open(ctx, dbPath)
	require.NoError(t, err)

	repos := sqlite.NewSQLiteRepositoryManager(db, logger)
	t.Cleanup(func() { repos.Close() })

	container, err := services.NewServiceContainer(repos, &services.ServiceConfig{
		Clock:  func() time.Time { return testNow },
		Logger: logger,
	})
	require.NoError(t, err)

	if seed {
		_, err := fixtures.Load(ctx, container, logger)
		require.NoError(t, err)
	}

	router := gin.New()
	SetupMiddleware(router, &MiddlewareConfig{Logger: logger, AllowedOrigins: []string{"*"}, MaxBodyBytes: 1 << 20})
	routerConfig := &RouterConfig{Services: container, Health: repos, Logger: logger, Version: "test", Environment: "test"}
	SetupRoutes(router, routerConfig)
	SetupDevelopmentRoutes(router, routerConfig)

	return &testServer{router: router, services: container}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			payload, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(payload)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestPersonnelEndpoints(t *testing.T) {
	s := setupServer(t, true)

	t.Run("list returns the seeded personnel", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/personnel", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var people []map[string]interface{}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &people))
		assert.Len(t, people, 5)
		assert.Equal(t, "John Smith", people[0]["name"])
		assert.NotNil(t, people[0]["commissionProfile"])
	})

	t.Run("underage personnel is rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/personnel", map[string]interface{}{
			"name": "Young Person", "age": 18, "phone": "555-0199", "commissionProfileId": 1,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		env := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "Validation failed", env.Message)
		assert.Contains(t, env.Errors, "Age must be 19 or older")
	})

	t.Run("unknown profile is rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/personnel", map[string]interface{}{
			"name": "New Hire", "age": 30, "phone": "555-0199", "commissionProfileId": 42,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w).Errors, "Commission profile with ID 42 does not exist")
	})

	t.Run("create then fetch", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/personnel", map[string]interface{}{
			"name": "  New Hire  ", "age": 30, "phone": "555-0199", "commissionProfileId": 2,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/personnel/6", w.Header().Get("Location"))

		env := decode(t, w)
		assert.True(t, env.Success)
		assert.Equal(t, "Personnel created successfully", env.Message)

		w = s.do(t, http.MethodGet, "/api/personnel/6", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var person map[string]interface{}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &person))
		assert.Equal(t, "New Hire", person["name"])
	})

	t.Run("update", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/personnel/6", map[string]interface{}{
			"name": "Renamed Hire", "age": 31, "phone": "555-0199", "commissionProfileId": 3,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Personnel updated successfully", decode(t, w).Message)
	})

	t.Run("missing record is 404", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/personnel/999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Personnel with ID 999 not found", decode(t, w).Message)
	})

	t.Run("bad id is 400", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/personnel/abc", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid id: must be a positive integer", decode(t, w).Message)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/personnel", `{"name":`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", decode(t, w).Message)
	})
}

func TestDeletePersonnelRequiresConfirmation(t *testing.T) {
	s := setupServer(t, true)

	w := s.do(t, http.MethodDelete, "/api/personnel/1", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Delete confirmation required. Add ?confirm=true to the request.", decode(t, w).Message)

	w = s.do(t, http.MethodDelete, "/api/personnel/1?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Success)

	w = s.do(t, http.MethodGet, "/api/sales?personnelId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sales []map[string]interface{}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &sales))
	assert.Empty(t, sales)

	w = s.do(t, http.MethodDelete, "/api/personnel/1?confirm=true", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommissionProfileEndpoints(t *testing.T) {
	s := setupServer(t, true)

	t.Run("missing fields", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/commissionprofile", map[string]interface{}{})
		require.Equal(t, http.StatusBadRequest, w.Code)

		env := decode(t, w)
		assert.Equal(t, []string{
			"Profile name is required",
			"Commission fixed amount is required",
			"Commission percentage is required",
		}, env.Errors)
	})

	t.Run("create, update and delete", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/commissionprofile", `{"profileName":4,"commissionFixed":250.5,"commissionPercentage":0.04}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var profile map[string]interface{}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &profile))
		assert.Equal(t, 250.5, profile["commissionFixed"])
		assert.Equal(t, 0.04, profile["commissionPercentage"])

		w = s.do(t, http.MethodPut, "/api/commissionprofile/4", `{"profileName":4,"commissionFixed":300,"commissionPercentage":0.045}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = s.do(t, http.MethodDelete, "/api/commissionprofile/4", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Commission profile with ID 4 deleted successfully", decode(t, w).Message)
	})

	t.Run("referenced profile cannot be deleted", func(t *testing.T) {
		w := s.do(t, http.MethodDelete, "/api/commissionprofile/1", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Cannot delete commission profile that is referenced by personnel records", decode(t, w).Message)
	})

	t.Run("missing profile is 404", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/commissionprofile/77", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Commission profile with ID 77 not found", decode(t, w).Message)
	})
}

func TestSalesEndpoints(t *testing.T) {
	s := setupServer(t, true)

	t.Run("future date is rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/sales", `{"personnelId":1,"reportDate":"2025-08-16","salesAmount":100}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Report date cannot be in the future", decode(t, w).Message)
	})

	t.Run("today is accepted", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/sales", `{"personnelId":1,"reportDate":"2025-08-15","salesAmount":100.005}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var sale map[string]interface{}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &sale))
		assert.Equal(t, 100.01, sale["salesAmount"])
		assert.Equal(t, "2025-08-15", sale["reportDate"])
	})

	t.Run("unknown personnel", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/sales", `{"personnelId":99,"reportDate":"2025-08-01","salesAmount":100}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Personnel with ID 99 does not exist", decode(t, w).Message)
	})

	t.Run("bad date in body", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/sales", `{"personnelId":1,"reportDate":"15/08/2025","salesAmount":100}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list filtered by range", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/sales?from=2025-07-18&to=2025-07-22", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var sales []map[string]interface{}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &sales))
		assert.Len(t, sales, 3)
	})

	t.Run("bad filter date", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/sales?from=July", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid from: expected YYYY-MM-DD", decode(t, w).Message)
	})

	t.Run("delete", func(t *testing.T) {
		w := s.do(t, http.MethodDelete, "/api/sales/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Sales record with ID 1 deleted successfully", decode(t, w).Message)

		w = s.do(t, http.MethodGet, "/api/sales/1", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Sales record with ID 1 not found", decode(t, w).Message)
	})
}

func TestReportEndpoints(t *testing.T) {
	s := setupServer(t, true)

	t.Run("overview json", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports/management-overview?year=2025&month=7", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var report struct {
			ReportPeriod struct {
				MonthName string `json:"monthName"`
				StartDate string `json:"startDate"`
				EndDate   string `json:"endDate"`
			} `json:"reportPeriod"`
			Summary struct {
				TotalSales        float64 `json:"totalSales"`
				TotalTransactions int     `json:"totalTransactions"`
				AveragePerPerson  float64 `json:"averagePerPerson"`
				DaysWithNoSales   int     `json:"daysWithNoSales"`
			} `json:"summary"`
			TopPerformers []struct {
				PersonnelName string `json:"personnelName"`
			} `json:"topPerformers"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &report))

		assert.Equal(t, "July", report.ReportPeriod.MonthName)
		assert.Equal(t, "2025-07-01", report.ReportPeriod.StartDate)
		assert.Equal(t, "2025-07-31", report.ReportPeriod.EndDate)
		assert.Equal(t, 7206.0, report.Summary.TotalSales)
		assert.Equal(t, 5, report.Summary.TotalTransactions)
		assert.Equal(t, 1441.2, report.Summary.AveragePerPerson)
		assert.Equal(t, 26, report.Summary.DaysWithNoSales)
		require.Len(t, report.TopPerformers, 3)
		assert.Equal(t, "Sarah Johnson", report.TopPerformers[0].PersonnelName)
	})

	t.Run("overview csv", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports/management-overview?year=2025&month=7&format=CSV", nil)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="management-overview-2025-07.csv"`, w.Header().Get("Content-Disposition"))

		body := w.Body.String()
		assert.True(t, strings.HasPrefix(body, "Management Overview Report - July 2025\n"))
		assert.Contains(t, body, "Total Sales,\"$7,206.00\"\n")
	})

	t.Run("payout json", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports/commission-payout?year=2025&month=7", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var report struct {
			Summary struct {
				ReportPeriod struct {
					Year  int `json:"year"`
					Month int `json:"month"`
				} `json:"reportPeriod"`
				TotalFixedCommissions    float64 `json:"totalFixedCommissions"`
				TotalVariableCommissions float64 `json:"totalVariableCommissions"`
				TotalPayout              float64 `json:"totalPayout"`
				PersonnelCount           int     `json:"personnelCount"`
			} `json:"summary"`
			PersonnelPayouts []struct {
				PersonnelName string  `json:"personnelName"`
				TotalPayout   float64 `json:"totalPayout"`
			} `json:"personnelPayouts"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &report))

		assert.Equal(t, 2025, report.Summary.ReportPeriod.Year)
		assert.Equal(t, 7, report.Summary.ReportPeriod.Month)
		assert.Equal(t, 2800.0, report.Summary.TotalFixedCommissions)
		assert.Equal(t, 279.8, report.Summary.TotalVariableCommissions)
		assert.Equal(t, 3079.8, report.Summary.TotalPayout)
		assert.Equal(t, 5, report.Summary.PersonnelCount)
		require.Len(t, report.PersonnelPayouts, 5)
	})

	t.Run("payout csv for one person", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports/commission-payout?year=2025&month=7&personnelId=2&format=csv", nil)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, `attachment; filename="commission-payout-2025-07.csv"`, w.Header().Get("Content-Disposition"))
		body := w.Body.String()
		assert.Contains(t, body, "Sarah Johnson,")
		assert.NotContains(t, body, "John Smith,")
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports/commission-payout", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var report struct {
			Summary struct {
				ReportPeriod struct {
					Month     int    `json:"month"`
					MonthName string `json:"monthName"`
				} `json:"reportPeriod"`
				TotalSales float64 `json:"totalSales"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &report))
		assert.Equal(t, 8, report.Summary.ReportPeriod.Month)
		assert.Equal(t, "August", report.Summary.ReportPeriod.MonthName)
		assert.Equal(t, 0.0, report.Summary.TotalSales)
	})

	t.Run("invalid format", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports/management-overview?format=xml", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, `Invalid format "xml": must be json or csv`, decode(t, w).Message)
	})

	t.Run("invalid month", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports/commission-payout?month=13", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w).Errors, "Month must be between 1 and 12")
	})

	t.Run("non-numeric year", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports/commission-payout?year=last", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid year: must be an integer", decode(t, w).Message)
	})
}

func TestHealthEndpoint(t *testing.T) {
	s := setupServer(t, false)

	w := s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "test", health["version"])

	router := gin.New()
	SetupRoutes(router, &RouterConfig{Services: s.services, Health: failingHealth{}, Version: "test"})

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDevelopmentFixturesRoute(t *testing.T) {
	s := setupServer(t, false)

	w := s.do(t, http.MethodPost, "/dev/fixtures", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result fixtures.Result
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &result))
	assert.Equal(t, fixtures.Result{Profiles: 3, Personnel: 5, Sales: 5}, result)

	w = s.do(t, http.MethodPost, "/dev/fixtures", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Store already holds data; fixtures skipped", decode(t, w).Message)
}

func TestUnknownRoute(t *testing.T) {
	s := setupServer(t, false)

	w := s.do(t, http.MethodGet, "/api/nothing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", decode(t, w).Message)
}
