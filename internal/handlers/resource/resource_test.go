package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Handler, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	handler := New(mockDB, "customer", "customer_id", []string{"name", "email", "phone", "address"})
	defer mockDB.Close()

	return handler, mockDB
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandler_List(t *testing.T) {
	handler, mock := NewMock(t)

	t.Run("Records listed", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"customer_id", "name", "email"}).
			AddRow(int64(17), "Avery", "avery@mail.test")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM customer")).
			WillReturnRows(rows)

		r := httptest.NewRequest(http.MethodGet, "/customer", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []map[string]any
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Equal(t, "Avery", body[0]["name"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty table yields empty array", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"customer_id", "name", "email"})
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM customer")).
			WillReturnRows(rows)

		r := httptest.NewRequest(http.MethodGet, "/customer", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM customer")).
			WillReturnError(errors.New("database error"))

		r := httptest.NewRequest(http.MethodGet, "/customer", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_Get(t *testing.T) {
	handler, mock := NewMock(t)

	t.Run("Record found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"customer_id", "name"}).
			AddRow(int64(17), "Avery")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM customer WHERE customer_id = $1")).
			WithArgs("17").
			WillReturnRows(rows)

		r := httptest.NewRequest(http.MethodGet, "/customer/17", nil)
		r = withURLParam(r, "id", "17")
		w := httptest.NewRecorder()

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Record not found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"customer_id", "name"})
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM customer WHERE customer_id = $1")).
			WithArgs("99").
			WillReturnRows(rows)

		r := httptest.NewRequest(http.MethodGet, "/customer/99", nil)
		r = withURLParam(r, "id", "99")
		w := httptest.NewRecorder()

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Record not found")
	})
}

func TestHandler_Create(t *testing.T) {
	handler, mock := NewMock(t)

	t.Run("Record created with sorted columns", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"customer_id", "email", "name"}).
			AddRow(int64(18), "sam@mail.test", "Sam")
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customer (email, name) VALUES ($1, $2) RETURNING *")).
			WithArgs("sam@mail.test", "Sam").
			WillReturnRows(rows)

		r := httptest.NewRequest(http.MethodPost, "/customer", bytes.NewBufferString(`{"name":"Sam","email":"sam@mail.test"}`))
		w := httptest.NewRecorder()

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "Sam", body["name"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown column rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/customer", bytes.NewBufferString(`{"is_admin":true}`))
		w := httptest.NewRecorder()

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown column: is_admin")
	})

	t.Run("Empty body rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/customer", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "request body is empty")
	})
}

func TestHandler_Update(t *testing.T) {
	handler, mock := NewMock(t)

	t.Run("Record updated", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"customer_id", "phone"}).
			AddRow(int64(17), "555-0199")
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE customer SET phone = $1 WHERE customer_id = $2 RETURNING *")).
			WithArgs("555-0199", "17").
			WillReturnRows(rows)

		r := httptest.NewRequest(http.MethodPut, "/customer/17", bytes.NewBufferString(`{"phone":"555-0199"}`))
		r = withURLParam(r, "id", "17")
		w := httptest.NewRecorder()

		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Record not found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"customer_id", "phone"})
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE customer SET phone = $1 WHERE customer_id = $2 RETURNING *")).
			WithArgs("555-0199", "99").
			WillReturnRows(rows)

		r := httptest.NewRequest(http.MethodPut, "/customer/99", bytes.NewBufferString(`{"phone":"555-0199"}`))
		r = withURLParam(r, "id", "99")
		w := httptest.NewRecorder()

		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	handler, mock := NewMock(t)

	t.Run("Record deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customer WHERE customer_id = $1")).
			WithArgs("17").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		r := httptest.NewRequest(http.MethodDelete, "/customer/17", nil)
		r = withURLParam(r, "id", "17")
		w := httptest.NewRecorder()

		handler.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Record deleted")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Record not found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customer WHERE customer_id = $1")).
			WithArgs("99").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		r := httptest.NewRequest(http.MethodDelete, "/customer/99", nil)
		r = withURLParam(r, "id", "99")
		w := httptest.NewRecorder()

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
