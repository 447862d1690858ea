package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postcalendar/internal/api/handlers"
	"github.com/maheshrc27/postcalendar/internal/api/middleware"
	"github.com/maheshrc27/postcalendar/internal/dragdrop"
	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/maheshrc27/postcalendar/internal/repository"
	"github.com/maheshrc27/postcalendar/internal/service"
)

func newTestApp(publisherKey string) *fiber.App {
	repo := repository.NewPostRepository()
	posts := service.NewPostService(repo, nil)

	app := fiber.New()
	RegisterRoutes(app, Handlers{
		Post:         handlers.NewPostHandler(posts, time.UTC),
		Calendar:     handlers.NewCalendarHandler(service.NewCalendarService(repo), dragdrop.NewController(posts), time.UTC),
		Platform:     handlers.NewPlatformHandler(service.NewPlatformService()),
		Media:        handlers.NewMediaHandler(service.NewMediaService(nil)),
		PublisherKey: middleware.NewPublisherKeyMiddleware(publisherKey),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, headers ...string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestScheduledPostLifecycle(t *testing.T) {
	app := newTestApp("secret")

	code, body := doJSON(t, app, "POST", "/api/posts", map[string]interface{}{
		"content":      "Sale now",
		"platforms":    []string{"instagram", "facebook"},
		"scheduled_at": "2024-06-01T09:00",
	})
	require.Equal(t, fiber.StatusCreated, code, string(body))

	var post models.ScheduledPost
	require.NoError(t, json.Unmarshal(body, &post))
	assert.Equal(t, models.PostStatusScheduled, post.Status)

	code, body = doJSON(t, app, "GET", "/api/posts?date=2024-06-01", nil)
	require.Equal(t, fiber.StatusOK, code)
	var day []models.ScheduledPost
	require.NoError(t, json.Unmarshal(body, &day))
	assert.Len(t, day, 1)

	code, body = doJSON(t, app, "POST", "/api/posts/"+post.ID+"/move", map[string]string{"date": "2024-06-05"})
	require.Equal(t, fiber.StatusOK, code, string(body))
	require.NoError(t, json.Unmarshal(body, &post))
	assert.Equal(t, "2024-06-05T09:00", post.ScheduledAt)

	code, body = doJSON(t, app, "GET", "/api/posts?date=2024-06-01", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, "[]", string(body))

	code, _ = doJSON(t, app, "POST", "/api/posts/"+post.ID+"/status", map[string]string{"status": "published"})
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, body = doJSON(t, app, "POST", "/api/posts/"+post.ID+"/status", map[string]string{"status": "published"}, middleware.PublisherKeyHeader, "secret")
	require.Equal(t, fiber.StatusOK, code, string(body))

	code, body = doJSON(t, app, "GET", "/api/posts/"+post.ID, nil)
	require.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &post))
	assert.Equal(t, models.PostStatusPublished, post.Status)
}

func TestCreatePostValidation(t *testing.T) {
	app := newTestApp("")

	code, body := doJSON(t, app, "POST", "/api/posts", map[string]interface{}{
		"content":      "x",
		"platforms":    []string{"twitter"},
		"scheduled_at": "2024-06-01",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, string(body), `"field":"scheduled_at"`)

	code, body = doJSON(t, app, "POST", "/api/drafts", map[string]interface{}{
		"content":   "x",
		"platforms": []string{},
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, string(body), `"field":"platforms"`)

	req := httptest.NewRequest("POST", "/api/drafts", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNotFound(t *testing.T) {
	app := newTestApp("")

	code, _ := doJSON(t, app, "GET", "/api/posts/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = doJSON(t, app, "POST", "/api/posts/missing/move", map[string]string{"date": "2024-06-05"})
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = doJSON(t, app, "POST", "/api/drafts/missing/promote", map[string]string{"date": "2024-06-05"})
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = doJSON(t, app, "GET", "/api/platforms/myspace", nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestDropDraftOnCalendar(t *testing.T) {
	app := newTestApp("")

	code, body := doJSON(t, app, "POST", "/api/drafts", map[string]interface{}{
		"content":   "Launch day!",
		"platforms": []string{"twitter"},
	})
	require.Equal(t, fiber.StatusCreated, code, string(body))
	var draft models.DraftPost
	require.NoError(t, json.Unmarshal(body, &draft))

	code, body = doJSON(t, app, "POST", "/api/calendar/drop", map[string]interface{}{
		"item": map[string]string{"kind": "draft", "id": draft.ID},
		"date": "2024-06-10",
	})
	require.Equal(t, fiber.StatusOK, code, string(body))

	var out struct {
		Action  string               `json:"action"`
		Skipped bool                 `json:"skipped"`
		Post    models.ScheduledPost `json:"post"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "promote", out.Action)
	assert.False(t, out.Skipped)
	assert.Equal(t, "2024-06-10T12:00", out.Post.ScheduledAt)

	code, body = doJSON(t, app, "POST", "/api/calendar/drop", map[string]interface{}{
		"item": map[string]string{"kind": "scheduled", "id": "gone"},
		"date": "2024-06-10",
	})
	require.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Skipped)

	code, _ = doJSON(t, app, "POST", "/api/calendar/drop", map[string]interface{}{
		"item": map[string]string{"kind": "folder", "id": "x"},
		"date": "2024-06-10",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestCalendarView(t *testing.T) {
	app := newTestApp("")

	code, body := doJSON(t, app, "GET", "/api/calendar?anchor=2024-06-12&view=week", nil)
	require.Equal(t, fiber.StatusOK, code)

	var view struct {
		View     string `json:"view"`
		Previous string `json:"previous"`
		Next     string `json:"next"`
		Days     []struct {
			Posts []models.ScheduledPost `json:"posts"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, "week", view.View)
	assert.Equal(t, "2024-06-05", view.Previous)
	assert.Equal(t, "2024-06-19", view.Next)
	assert.Len(t, view.Days, 7)

	code, body = doJSON(t, app, "GET", "/api/calendar?anchor=2024-06-12&view=month", nil)
	require.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Len(t, view.Days, 30)

	code, _ = doJSON(t, app, "GET", "/api/calendar?view=year", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = doJSON(t, app, "GET", "/api/calendar?anchor=12/06/2024", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestPlatformsAndMedia(t *testing.T) {
	app := newTestApp("")

	code, body := doJSON(t, app, "GET", "/api/platforms", nil)
	require.Equal(t, fiber.StatusOK, code)
	var platforms []models.PlatformInfo
	require.NoError(t, json.Unmarshal(body, &platforms))
	assert.Len(t, platforms, 4)

	code, _ = doJSON(t, app, "GET", "/api/platforms/instagram", nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, _ = doJSON(t, app, "POST", "/api/media", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
}
