package handlers_test

import (
	"NoteKeeper/internal/model"
	"NoteKeeper/internal/repo"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newFlowDB — отдельная in-memory база для сквозного сценария
func newFlowDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:notesflow?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Note{}))
	return db
}

// Сквозной сценарий: create → list → чужой get → update → delete → get
func TestNotes_FullFlow(t *testing.T) {
	db := newFlowDB(t)
	userRepo := repo.NewUserRepository(db)
	noteRepo := repo.NewNoteRepository(db)
	router := newTestRouter(t, userRepo, noteRepo)

	do := func(method, path, body string, userID int64) *httptest.ResponseRecorder {
		t.Helper()
		var rd *strings.Reader
		if body != "" {
			rd = strings.NewReader(body)
		} else {
			rd = strings.NewReader("")
		}
		req := httptest.NewRequest(method, path, rd)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if userID != 0 {
			addAuthHeader(t, req, userID)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	const userA, userB = int64(1001), int64(1002)

	// create как A
	rr := do(http.MethodPost, "/api/notes", `{"title":"Groceries","content":"milk, eggs"}`, userA)
	require.Equal(t, http.StatusCreated, rr.Code)
	var created model.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Groceries", created.Title)

	// list как A содержит созданную заметку
	rr = do(http.MethodGet, "/api/notes", "", userA)
	require.Equal(t, http.StatusOK, rr.Code)
	var listed []model.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// get как B — 404, про существование чужой заметки не узнать
	rr = do(http.MethodGet, "/api/notes/"+created.ID, "", userB)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// update как B — тот же 404
	rr = do(http.MethodPut, "/api/notes/"+created.ID, `{"title":"stolen","content":"x"}`, userB)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// update как A двигает updated_at вперёд
	time.Sleep(20 * time.Millisecond)
	rr = do(http.MethodPut, "/api/notes/"+created.ID, `{"title":"Groceries v2","content":"milk, eggs, bread"}`, userA)
	require.Equal(t, http.StatusOK, rr.Code)
	var updated model.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Groceries v2", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updated_at must advance")

	// delete как A
	rr = do(http.MethodDelete, "/api/notes/"+created.ID, "", userA)
	require.Equal(t, http.StatusOK, rr.Code)

	// get как A после удаления — 404
	rr = do(http.MethodGet, "/api/notes/"+created.ID, "", userA)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// list как A снова пуст
	rr = do(http.MethodGet, "/api/notes", "", userA)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	assert.Len(t, listed, 0)
}

// Обновление свежей заметки поднимает её наверх списка
func TestNotes_ListOrderAfterUpdate(t *testing.T) {
	db := newFlowDB(t)
	noteRepo := repo.NewNoteRepository(db)
	router := newTestRouter(t, repo.NewUserRepository(db), noteRepo)

	const user = int64(2001)

	create := func(title string) model.Note {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"title":"`+title+`","content":"body"}`))
		req.Header.Set("Content-Type", "application/json")
		addAuthHeader(t, req, user)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code)
		var n model.Note
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &n))
		return n
	}

	first := create("first")
	time.Sleep(20 * time.Millisecond)
	second := create("second")

	// свежесозданная — первая
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	addAuthHeader(t, req, user)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var listed []model.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)

	// обновляем первую — она всплывает наверх
	time.Sleep(20 * time.Millisecond)
	ureq := httptest.NewRequest(http.MethodPut, "/api/notes/"+first.ID, strings.NewReader(`{"title":"first v2","content":"body"}`))
	ureq.Header.Set("Content-Type", "application/json")
	addAuthHeader(t, ureq, user)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, ureq)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	addAuthHeader(t, req, user)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
}
