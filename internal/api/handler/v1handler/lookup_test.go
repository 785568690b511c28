package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"urlintel/internal/api/handler/v1handler"
	"urlintel/pkg/domain"
	"urlintel/pkg/logger"
	"urlintel/pkg/serrors"

	mocklookup "urlintel/internal/lookup/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*mocklookup.MockLookuper, *v1handler.Handler) {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	lookuper := mocklookup.NewMockLookuper(gomock.NewController(t))

	return lookuper, v1handler.New(v1handler.Deps{Lookuper: lookuper})
}

func doLookup(h *v1handler.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Lookup(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestLookup_MissingURLParam(t *testing.T) {
	_, h := newTestHandler(t)

	rec := doLookup(h, "/")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, `{"error":"No valid query"}`, rec.Body.String())
}

func TestLookup_MalformedURL(t *testing.T) {
	lookuper, h := newTestHandler(t)

	lookuper.EXPECT().Aggregate(gomock.Any(), "http://exa mple.com").
		Return(nil, serrors.KindOnly(serrors.ErrBadRequest))

	rec := doLookup(h, "/?url=http%3A%2F%2Fexa%20mple.com")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"error":"invalid url"}`, rec.Body.String())
}

func TestLookup_AggregatorFailure(t *testing.T) {
	lookuper, h := newTestHandler(t)

	lookuper.EXPECT().Aggregate(gomock.Any(), gomock.Any()).
		Return(nil, serrors.KindOnly(serrors.ErrInternal))

	rec := doLookup(h, "/?url=http%3A%2F%2Fexample.com")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestLookup_ReportShape(t *testing.T) {
	lookuper, h := newTestHandler(t)

	report := &domain.Report{
		Target: domain.TargetURL{
			Scheme:   "http",
			Host:     "example.com",
			Hostname: "example.com",
			Path:     "/login",
		},
		Matches: []domain.CollectionMatch{
			{
				Collection: "phishtank",
				Outcome:    domain.OutcomeMatched,
				Record: &domain.ReputationRecord{
					Collection:   "phishtank",
					Hostname:     "example.com",
					Pathname:     "/login",
					IncludesPath: true,
					Details:      json.RawMessage(`{"verified":true}`),
				},
			},
			{Collection: "openphish", Outcome: domain.OutcomeNoRecord},
			{Collection: "urlhaus", Outcome: domain.OutcomeFailed},
		},
		Subdomains: json.RawMessage(`["a.example.com"]`),
	}
	lookuper.EXPECT().Aggregate(gomock.Any(), "http://example.com/login").Return(report, nil)

	rec := doLookup(h, "/?url=http%3A%2F%2Fexample.com%2Flogin")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.JSONEq(t, `"http"`, string(body["protocol"]))
	require.JSONEq(t, `"example.com"`, string(body["host"]))
	require.JSONEq(t, `"/login"`, string(body["pathname"]))
	require.JSONEq(t, `["a.example.com"]`, string(body["subdomains"]))

	var matched struct {
		Hostname     string `json:"hostname"`
		Pathname     string `json:"pathname"`
		IncludesPath bool   `json:"includesPath"`
	}
	require.NoError(t, json.Unmarshal(body["phishtank"], &matched))
	require.Equal(t, "example.com", matched.Hostname)
	require.Equal(t, "/login", matched.Pathname)
	require.True(t, matched.IncludesPath)

	// no record and failed are indistinguishable on the wire
	require.JSONEq(t, `null`, string(body["openphish"]))
	require.JSONEq(t, `null`, string(body["urlhaus"]))

	// reverse DNS never applied, so the field is absent rather than null
	_, present := body["reverseDns"]
	require.False(t, present)
}

func TestLookup_ReverseDNSForIPTarget(t *testing.T) {
	lookuper, h := newTestHandler(t)

	report := &domain.Report{
		Target: domain.TargetURL{
			Scheme:   "http",
			Host:     "203.0.113.5",
			Hostname: "203.0.113.5",
			Path:     "/",
		},
		Matches: []domain.CollectionMatch{
			{Collection: "phishtank", Outcome: domain.OutcomeNoRecord},
		},
		ReverseDNSApplicable: true,
	}
	lookuper.EXPECT().Aggregate(gomock.Any(), "203.0.113.5").Return(report, nil)

	rec := doLookup(h, "/?url=203.0.113.5")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// the lookup applied but yielded nothing, so the field is present as null
	raw, present := body["reverseDns"]
	require.True(t, present)
	require.JSONEq(t, `null`, string(raw))
	require.JSONEq(t, `null`, string(body["subdomains"]))
}

func TestEncodeReport_EnrichmentPassthrough(t *testing.T) {
	report := &domain.Report{
		Target: domain.TargetURL{Scheme: "https", Host: "example.com:8443", Path: "/"},
		Matches: []domain.CollectionMatch{
			{Collection: "phishtank", Outcome: domain.OutcomeNoRecord},
		},
		Subdomains:           json.RawMessage(`{"subdomains":["x"],"extra":1}`),
		ReverseDNS:           json.RawMessage(`{"resolutions":[]}`),
		ReverseDNSApplicable: true,
	}

	body, err := v1handler.EncodeReport(report)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &decoded))
	// enrichment payloads are forwarded byte for byte
	require.Equal(t, `{"subdomains":["x"],"extra":1}`, string(decoded["subdomains"]))
	require.Equal(t, `{"resolutions":[]}`, string(decoded["reverseDns"]))
	require.JSONEq(t, `"example.com:8443"`, string(decoded["host"]))
}
