package notifications

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestFineIssued(t *testing.T) {

	t.Run("publishes the fine to its topic without errors", func(t *testing.T) {
		is := is.New(t)

		var gotPath, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ntfy := NewNtfy(true, server.URL, server.Client())

		err := ntfy.FineIssued(context.Background(), "membership-123", 2.50)
		is.NoErr(err)
		is.Equal(gotPath, "/Fine_issued")
		is.Equal(gotBody, "Fine issued:\nMember: membership-123\nAmount: 2.50")
	})

	t.Run("a non 200 answer surfaces as a notification error", func(t *testing.T) {
		is := is.New(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		ntfy := NewNtfy(true, server.URL, server.Client())

		err := ntfy.FineIssued(context.Background(), "membership-123", 2.50)
		var notificationErr ErrNotificationFailed
		is.True(errors.As(err, &notificationErr))
	})

	t.Run("a disabled notifier publishes nothing", func(t *testing.T) {
		is := is.New(t)

		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		ntfy := NewNtfy(false, server.URL, server.Client())

		err := ntfy.FineIssued(context.Background(), "membership-123", 2.50)
		is.NoErr(err)
		is.True(!called)
	})

	t.Run("expected context timeout error", func(t *testing.T) {
		is := is.New(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ntfy := NewNtfy(true, server.URL, server.Client())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := ntfy.FineIssued(ctx, "membership-123", 2.50)
		is.True(errors.Is(err, context.Canceled))
	})
}

func TestMemberSuspended(t *testing.T) {
	is := is.New(t)

	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ntfy := NewNtfy(true, server.URL, server.Client())

	err := ntfy.MemberSuspended(context.Background(), "membership-456")
	is.NoErr(err)
	is.Equal(gotPath, "/Member_suspended")
	is.Equal(gotBody, "Member suspended:\nMember: membership-456")
}
