package uek

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"planzajec-backend/lib/schedule"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryValues(t *testing.T) {
	c := NewClient(ClientOptions{BaseURL: "https://planzajec.uek.krakow.pl/index.php"})

	require.Equal(
		t,
		"https://planzajec.uek.krakow.pl/index.php?id=1234&okres=1&typ=G&xml=",
		c.URL(Query{Type: schedule.TypeGroup, ID: "1234", Period: "1"}),
	)
	require.Equal(
		t,
		"https://planzajec.uek.krakow.pl/index.php?id=1234&okres=1&typ=G",
		c.SourceURL(Query{Type: schedule.TypeGroup, ID: "1234", Period: "1"}),
	)
	require.Equal(t, "https://planzajec.uek.krakow.pl/index.php?xml=", c.URL(Query{}))
	require.Equal(t, "https://planzajec.uek.krakow.pl/index.php", c.URL(Query{Format: FormatHTML}))
}

func newUpstream(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientOptions{BaseURL: server.URL + "/index.php"})
}

func TestFetchStatus(t *testing.T) {
	c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Fetch(context.Background(), Query{Type: schedule.TypeGroup, ID: "1"})
	var ferr *FetchError
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, http.StatusServiceUnavailable, ferr.StatusCode)
	require.Contains(t, ferr.URL, "id=1")
}

func TestFetchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewClient(ClientOptions{BaseURL: server.URL})
	server.Close()

	_, err := c.Fetch(context.Background(), Query{})
	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	require.Zero(t, ferr.StatusCode)
	require.NotNil(t, ferr.Unwrap())
}

func TestGetScheduleXML(t *testing.T) {
	c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "N", q.Get("typ"))
		require.Equal(t, "77", q.Get("id"))
		require.Equal(t, DefaultPeriod, q.Get("okres"))
		require.True(t, q.Has("xml"))
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.Write([]byte(teacherXML))
	})

	s, err := c.GetSchedule(context.Background(), schedule.TypeTeacher, "77", "", FormatXML)
	require.NoError(t, err)
	require.Equal(t, schedule.TypeTeacher, s.Type)
	require.Equal(t, "dr Anna Nowak", s.Label)
	require.Len(t, s.Items, 2)
	require.Equal(t, c.BaseURL+"?id=77&okres=1&typ=N", s.SourceURL)
	require.Equal(t, "https://e-uczelnia.uek.krakow.pl/course/view.php?id=321", *s.CourseURL)
}

func TestGetScheduleHTML(t *testing.T) {
	c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.False(t, r.URL.Query().Has("xml"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(groupHTML))
	})

	s, err := c.GetSchedule(context.Background(), schedule.TypeGroup, "1234", "2", FormatHTML)
	require.NoError(t, err)
	require.Equal(t, "1234", s.ID)
	require.Len(t, s.Items, 2)
	for _, item := range s.Items {
		require.Equal(t, "KrDUIs1011", *item.Group)
	}
	require.Equal(t, "https://teams.microsoft.com/l/meetup", *s.Items[1].Location)
}

func TestGetScheduleValidationError(t *testing.T) {
	c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<plan-zajec typ="G" id="1"><zajecia><termin>07.10.2024</termin><od-godz>08:00</od-godz><do-godz>09:30</do-godz><typ>wykład</typ></zajecia></plan-zajec>`))
	})

	_, err := c.GetSchedule(context.Background(), schedule.TypeGroup, "1", "1", FormatXML)
	var verr *schedule.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
}

func TestGetCategories(t *testing.T) {
	c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("grupa") != "" {
			require.Equal(t, "Kolegium Ekonomii", r.URL.Query().Get("grupa"))
			w.Write([]byte(categoryDetailXML))
			return
		}
		w.Write([]byte(categoriesXML))
	})

	categories, err := c.GetCategories(context.Background(), FormatXML)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	detail, err := c.GetCategoryDetail(context.Background(), schedule.TypeGroup, "Kolegium Ekonomii", FormatXML)
	require.NoError(t, err)
	require.Len(t, detail.Entries, 2)

	_, err = c.GetCategoryDetail(context.Background(), schedule.TypeGroup, "", FormatXML)
	require.Error(t, err)
}
