package httpserver_test

import (
	"castingagency/actor"
	"castingagency/auth"
	"castingagency/httpserver"
	"castingagency/movie"
	"castingagency/pkg/config"
	"castingagency/pkg/jwt"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	assistantToken = "assistant-token"
	directorToken  = "director-token"
	producerToken  = "producer-token"
	noClaimToken   = "no-permissions-claim-token"
)

func testConfig() *config.Config {
	return &config.Config{AppEnv: "local", AllowOrigins: "*"}
}

// stubVerifier accepts a fixed set of raw tokens, one per role.
type stubVerifier map[string]auth.Claims

func (v stubVerifier) Verify(_ context.Context, rawToken string) (auth.Claims, error) {
	claims, ok := v[rawToken]
	if !ok {
		return auth.Claims{}, jwt.ErrTokenInvalid
	}
	return claims, nil
}

func testVerifier() stubVerifier {
	assistant := []string{auth.GetActors, auth.GetMovies}
	director := append(append([]string{}, assistant...),
		auth.PostActors, auth.PatchActors, auth.DeleteActors, auth.PatchMovies)
	producer := append(append([]string{}, director...), auth.PostMovies, auth.DeleteMovies)

	return stubVerifier{
		assistantToken: {Subject: "auth0|assistant", Permissions: assistant},
		directorToken:  {Subject: "auth0|director", Permissions: director},
		producerToken:  {Subject: "auth0|producer", Permissions: producer},
		noClaimToken:   {Subject: "auth0|nobody"},
	}
}

func newTestServer(t testing.TB, options ...httpserver.Options) *httpserver.Server {
	t.Helper()

	base := []httpserver.Options{
		httpserver.WithConfig(testConfig()),
		httpserver.WithAuthService(auth.NewUsecase(testVerifier())),
	}
	server, err := httpserver.New(append(base, options...)...)
	require.NoError(t, err)
	return server
}

func makeRequest(server *httpserver.Server, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

// callAPI sends body as JSON with token as a bearer credential. An empty
// token sends no Authorization header.
func callAPI(server *httpserver.Server, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t testing.TB, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func decodeAPIError(t testing.TB, rec *httptest.ResponseRecorder) httpserver.APIError {
	t.Helper()
	var resp httpserver.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func ptr[T any](v T) *T {
	return &v
}

type MockActorService struct {
	mock.Mock
}

func (m *MockActorService) ListActors(ctx context.Context) ([]actor.Actor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]actor.Actor), args.Error(1)
}

func (m *MockActorService) GetActor(ctx context.Context, id int64) (actor.Actor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(actor.Actor), args.Error(1)
}

func (m *MockActorService) AddActor(ctx context.Context, a actor.Actor) (actor.Actor, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(actor.Actor), args.Error(1)
}

func (m *MockActorService) UpdateActor(ctx context.Context, id int64, p actor.Patch) (actor.Actor, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(actor.Actor), args.Error(1)
}

func (m *MockActorService) DeleteActor(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) AddMovie(ctx context.Context, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, id int64, p movie.Patch) (movie.Movie, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type recordingTransport struct {
	events []*sentrygo.Event
}

func (t *recordingTransport) Configure(sentrygo.ClientOptions) {}

func (t *recordingTransport) SendEvent(event *sentrygo.Event) {
	t.events = append(t.events, event)
}

func (t *recordingTransport) Flush(time.Duration) bool {
	return true
}

// recordSentry turns reporting on and captures events instead of sending them.
func recordSentry(t *testing.T) *recordingTransport {
	t.Helper()

	t.Setenv("APP_ENV", "production")
	t.Setenv("SENTRY_DSN", "https://public@sentry.example.com/1")

	transport := &recordingTransport{}
	err := sentrygo.Init(sentrygo.ClientOptions{
		Dsn:       "https://public@sentry.example.com/1",
		Transport: transport,
	})
	require.NoError(t, err)
	t.Cleanup(func() { sentrygo.CurrentHub().BindClient(nil) })

	return transport
}
