package resource

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/pg"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/utils"
)

// Handler serves plain CRUD for one table. Table and column names are fixed
// at registration time, so only values ever reach the query as parameters.
type Handler struct {
	db       pg.Database
	table    string
	idColumn string
	columns  map[string]struct{}
}

func New(db pg.Database, table, idColumn string, columns []string) *Handler {
	set := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		set[column] = struct{}{}
	}
	return &Handler{
		db:       db,
		table:    table,
		idColumn: idColumn,
		columns:  set,
	}
}

func (h *Handler) InitRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(r.Context(), fmt.Sprintf(`SELECT * FROM %s`, h.table))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer rows.Close()

	records, err := collectRows(rows)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, records)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rows, err := h.db.Query(r.Context(),
		fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`, h.table, h.idColumn), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer rows.Close()

	records, err := collectRows(rows)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Record not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, records[0])
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := h.decodeFields(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	placeholders := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = fields[name]
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		h.table, strings.Join(names, ", "), strings.Join(placeholders, ", "))
	rows, err := h.db.Query(r.Context(), query, args...)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer rows.Close()

	records, err := collectRows(rows)
	if err != nil || len(records) == 0 {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, records[0])
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fields, err := h.decodeFields(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, len(names))
	args := make([]any, 0, len(names)+1)
	for i, name := range names {
		assignments[i] = fmt.Sprintf("%s = $%d", name, i+1)
		args = append(args, fields[name])
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d RETURNING *`,
		h.table, strings.Join(assignments, ", "), h.idColumn, len(names)+1)
	rows, err := h.db.Query(r.Context(), query, args...)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer rows.Close()

	records, err := collectRows(rows)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Record not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, records[0])
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tag, err := h.db.Exec(r.Context(),
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, h.table, h.idColumn), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if tag.RowsAffected() == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Record not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Record deleted"})
}

func (h *Handler) decodeFields(r *http.Request) (map[string]any, error) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("invalid request body")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("request body is empty")
	}
	for name := range body {
		if _, ok := h.columns[name]; !ok {
			return nil, fmt.Errorf("unknown column: %s", name)
		}
	}
	return body, nil
}

func collectRows(rows pgx.Rows) ([]map[string]any, error) {
	var records []map[string]any
	fields := rows.FieldDescriptions()
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		record := make(map[string]any, len(fields))
		for i, field := range fields {
			record[string(field.Name)] = values[i]
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if records == nil {
		records = []map[string]any{}
	}
	return records, nil
}
