package notion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"steam-notion-sync/core/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(baseURL string) Config {
	return Config{
		APIKey:     "secret_abc",
		DatabaseID: "db1",
		Version:    "2022-06-28",
		BaseURL:    baseURL,
		Properties: PropertyNames{
			Title:                "Name",
			Playtime:             "Playtime",
			LastPlayed:           "Last Played",
			StoreURL:             "Store",
			Completion:           "Completion",
			TotalAchievements:    "Total",
			AchievedAchievements: "Achieved",
			Review:               "Review",
			Info:                 "Info",
			Tags:                 "Tags",
			AppID:                "AppID",
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := retry.NewClient(retry.Config{MaxRetries: 2, RetryDelay: time.Millisecond, Timeout: time.Second}, zap.NewNop())
	return NewClient(testConfig(server.URL), httpClient, zap.NewNop())
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestClient_Headers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret_abc", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))
		assert.Equal(t, "/v1/databases/db1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"id":"db1","properties":{"Name":{"id":"title","name":"Name","type":"title"}}}`))
	})

	db, err := client.GetDatabase(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "title", db.Properties["Name"].Type)
}

func TestQueryDatabase(t *testing.T) {
	t.Run("Results", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/databases/db1/query", r.URL.Path)
			body := decodeBody(t, r)
			assert.Equal(t, map[string]any{
				"property": "Name",
				"title":    map[string]any{"equals": "Half-Life"},
			}, body["filter"])
			_, _ = w.Write([]byte(`{"results":[{"id":"p1","properties":{"AppID":{"type":"number","number":70}}}],"has_more":false}`))
		})

		pages, err := client.QueryDatabase(context.Background(), Query{Filter: TitleEquals("Name", "Half-Life")})
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "p1", pages[0].ID)
		require.NotNil(t, pages[0].Properties["AppID"].Number)
		assert.Equal(t, 70.0, *pages[0].Properties["AppID"].Number)
	})

	t.Run("MissingResults", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"object":"error"}`))
		})

		pages, err := client.QueryDatabase(context.Background(), Query{Filter: NumberEquals("AppID", 70)})
		assert.Nil(t, pages)
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("Exhausted", func(t *testing.T) {
		var requestCount atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			requestCount.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"object":"error","code":"unauthorized"}`))
		})

		_, err := client.QueryDatabase(context.Background(), Query{})
		assert.True(t, errors.Is(err, retry.ErrExhausted))
		assert.Equal(t, int32(2), requestCount.Load())
	})
}

func TestCreatePage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pages", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, map[string]any{"type": "database_id", "database_id": "db1"}, body["parent"])
		assert.Equal(t, map[string]any{"type": "external", "external": map[string]any{"url": "https://example.com/cover.jpg"}}, body["cover"])

		props := body["properties"].(map[string]any)
		assert.Equal(t, map[string]any{"type": "multi_select", "multi_select": []any{}}, props["Tags"])
		assert.Equal(t, map[string]any{"type": "number", "number": 10.0}, props["Playtime"])

		_, _ = w.Write([]byte(`{"id":"new-page"}`))
	})

	page, err := client.CreatePage(context.Background(), PageWrite{
		Properties: Properties{
			"Tags":     MultiSelectValue(nil),
			"Playtime": NumberValue(10),
		},
		Cover: External("https://example.com/cover.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-page", page.ID)
}

func TestUpdatePage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/pages/p1", r.URL.Path)

		body := decodeBody(t, r)
		assert.NotContains(t, body, "parent")
		props := body["properties"].(map[string]any)
		assert.Equal(t, map[string]any{"type": "checkbox", "checkbox": true}, props["Tags"])

		_, _ = w.Write([]byte(`{"id":"p1"}`))
	})

	page, err := client.UpdatePage(context.Background(), "p1", PageWrite{
		Properties: Properties{"Tags": CheckboxValue(true)},
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", page.ID)
}

func TestPropertyValue_JSON(t *testing.T) {
	tests := []struct {
		name  string
		value PropertyValue
		want  string
	}{
		{"Title", TitleValue("Half-Life"), `{"title":[{"type":"text","text":{"content":"Half-Life"}}],"type":"title"}`},
		{"RichText empty", RichTextValue(""), `{"rich_text":[{"type":"text","text":{"content":""}}],"type":"rich_text"}`},
		{"Number", NumberValue(-1), `{"number":-1,"type":"number"}`},
		{"Date", DateValue("2023-11-14"), `{"date":{"start":"2023-11-14"},"type":"date"}`},
		{"URL", URLValue("https://store.steampowered.com/app/70"), `{"type":"url","url":"https://store.steampowered.com/app/70"}`},
		{"MultiSelect", MultiSelectValue([]SelectOption{{Name: "50.0%"}}), `{"multi_select":[{"name":"50.0%"}],"type":"multi_select"}`},
		{"Checkbox", CheckboxValue(false), `{"checkbox":false,"type":"checkbox"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var decoded PropertyValue
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.value.Type, decoded.Type)
		})
	}

	_, err := json.Marshal(PropertyValue{Type: "formula"})
	assert.Error(t, err)
}

func TestPropertyValue_PlainText(t *testing.T) {
	var v PropertyValue
	require.NoError(t, json.Unmarshal([]byte(`{"type":"title","title":[{"type":"text","text":{"content":"Half"},"plain_text":"Half"},{"type":"text","text":{"content":"-Life"}}]}`), &v))
	assert.Equal(t, "Half-Life", v.PlainText())
}
