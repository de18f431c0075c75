package serp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func searchJobsMock() (*http.Response, error) {
	file, err := os.ReadFile("testdata/search_jobs.json")

	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBuffer(file)),
	}, err
}

func Test_SerpClient_Search_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.URL.String() != "https://google.serper.dev/jobs" {
			return false
		}
		if req.Header.Get("X-API-KEY") != "test-key" {
			return false
		}
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(body))

		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			return false
		}
		return payload["q"] == "python internship Cairo" && payload["num"] == float64(10)
	})).Return(searchJobsMock())

	client := NewClient("https://google.serper.dev", "test-key")
	client.SetHTTPClient(mockClient)

	results, err := client.Search(context.Background(), "python internship Cairo", 10)
	assert.NoError(err)

	assert.True(len(results) == 2)
	assert.Equal(results[0].Title, "Software Engineering Intern")
	assert.Equal(results[0].Company, "Instabug")
	assert.Equal(results[0].URL, "https://careers.instabug.com/jobs/swe-intern")
	assert.Equal(results[1].Title, "Data Science Intern")
	assert.Equal(results[1].Company, "Vodafone")
}

func Test_SerpClient_Search_NonOkStatusIsError(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 429,
		Body:       io.NopCloser(bytes.NewBufferString(`{"message": "rate limit exceeded"}`)),
	}, nil)

	client := NewClient("https://google.serper.dev", "test-key")
	client.SetHTTPClient(mockClient)

	_, err := client.Search(context.Background(), "python internship Cairo", 10)

	assert.Error(err)
	assert.Contains(err.Error(), "429")
}

func Test_SerpClient_Search_RejectsEmptyQuery(t *testing.T) {

	client := NewClient("https://google.serper.dev", "test-key")

	_, err := client.Search(context.Background(), "", 10)

	assert.Error(t, err)
}

func Test_SerpClient_Search_RejectsNonPositiveLimit(t *testing.T) {

	client := NewClient("https://google.serper.dev", "test-key")

	_, err := client.Search(context.Background(), "python internship Cairo", 0)

	assert.Error(t, err)
}
