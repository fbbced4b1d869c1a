package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/config"
)

const sampleDataset = `{
  "campaigns": [
    {
      "id": "c1",
      "name": "Summer Sale",
      "spend": 1000,
      "revenue": 4000,
      "demographic_breakdown": [
        {"gender": "Male", "age_group": "18-24", "performance": {"impressions": 1000, "clicks": 50, "conversions": 5}}
      ],
      "device_performance": [
        {"device": "Mobile", "impressions": 800, "clicks": 40, "conversions": 4, "spend": 600, "revenue": 2500, "percentage_of_traffic": 70}
      ],
      "regional_performance": [
        {"region": "Dubai", "country": "UAE", "spend": 700, "revenue": 3000}
      ]
    }
  ]
}`

func TestHTTPSource_Fetch(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleDataset))
	}))
	defer server.Close()

	source := NewHTTPSource(config.Dataset{URL: server.URL, Token: "secret"})

	data, err := source.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, config.SourceHTTP, source.Name())
	require.Len(t, data.Campaigns, 1)

	c := data.Campaigns[0]
	assert.Equal(t, "Summer Sale", c.Name)
	assert.Equal(t, int64(50), c.DemographicBreakdown[0].Performance.Clicks)
	assert.Equal(t, int64(40), c.DevicePerformance[0].Clicks)
	assert.Equal(t, 70.0, c.DevicePerformance[0].PercentageOfTraffic)
	assert.NotNil(t, c.WeeklyPerformance)
	assert.Empty(t, c.WeeklyPerformance)
}

func TestHTTPSource_FetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantMsg string
	}{
		{
			name: "status diferente de 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantMsg: "requisição do dataset falhou com status: 502 Bad Gateway",
		},
		{
			name: "json inválido",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"campaigns": [`))
			},
			wantMsg: "decoding dataset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			data, err := NewHTTPSource(config.Dataset{URL: server.URL}).Fetch(context.Background())

			assert.Nil(t, data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestHTTPSource_FetchCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPSource(config.Dataset{URL: server.URL}).Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marketing.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDataset), 0o600))

	data, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Campaigns, 1)
	assert.Equal(t, "c1", data.Campaigns[0].ID)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background())
	assert.Error(t, err)
}

func TestDecodeDataset_EmptyObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	data, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data.Campaigns)
	assert.Empty(t, data.Campaigns)
}

func TestNew(t *testing.T) {
	source, err := New(config.Dataset{Source: config.SourceHTTP, URL: "http://localhost"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, source)

	source, err = New(config.Dataset{Source: config.SourceFile, Path: "data.json"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, source)

	_, err = New(config.Dataset{Source: config.SourcePostgres, Table: "campaigns"}, nil)
	assert.Error(t, err)

	_, err = New(config.Dataset{Source: "ftp"}, nil)
	assert.Error(t, err)
}
