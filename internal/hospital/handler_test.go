package hospital

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(newTestRepo(t)))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPatientEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/patients", createPatientRequest{
		Name: "John Smith", Age: 45, Gender: "Male",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Positive(t, created["patient_id"])

	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var patients []Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patients))
	require.Len(t, patients, 1)
	assert.Equal(t, "John Smith", patients[0].Name)

	age := 46
	w = doJSON(t, r, http.MethodPatch, "/patients/1", PatientUpdate{Age: &age})
	require.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/patients/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var patient Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patient))
	assert.Equal(t, 46, patient.Age)

	req = httptest.NewRequest(http.MethodGet, "/patients/9999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePatientValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/patients", createPatientRequest{Name: "", Age: 45})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/patients", createPatientRequest{Name: "Ann", Age: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDoctorAndDashboardEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/doctors", createDoctorRequest{
		Name: "Dr. Chen", Specialization: "Cardiology",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/doctors?specialization=Cardiology", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var doctors []Doctor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Chen", doctors[0].Name)

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var stats DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalDoctors)
}
