package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/homewire/backend/internal/model"
)

type mockPageViewRepo struct {
	views   []*model.PageView
	saveErr error
}

func (r *mockPageViewRepo) Save(ctx context.Context, view *model.PageView) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	view.ID = int64(len(r.views) + 1)
	view.CreatedAt = time.Now().UTC()
	r.views = append(r.views, view)
	return nil
}

func TestLog_AnonymizesIP(t *testing.T) {
	repo := &mockPageViewRepo{}
	svc := NewPageViewService(repo)

	view := svc.Log(context.Background(), model.PageViewInput{
		Path: "/",
		IP:   "192.168.1.100",
	})
	if view == nil {
		t.Fatal("expected a stored page view")
	}
	if view.IPAddress != "192.168.1.0" {
		t.Errorf("ip_address = %q, want 192.168.1.0", view.IPAddress)
	}
}

func TestLog_TruncatesFields(t *testing.T) {
	repo := &mockPageViewRepo{}
	svc := NewPageViewService(repo)

	view := svc.Log(context.Background(), model.PageViewInput{
		Path:      "/" + strings.Repeat("p", 300),
		UserAgent: strings.Repeat("u", 600),
		Referrer:  strings.Repeat("r", 600),
		SessionID: strings.Repeat("s", 150),
	})
	if view == nil {
		t.Fatal("expected a stored page view")
	}
	if len(view.PagePath) != 200 {
		t.Errorf("page_path length = %d, want 200", len(view.PagePath))
	}
	if len(view.UserAgent) != 500 {
		t.Errorf("user_agent length = %d, want 500", len(view.UserAgent))
	}
	if len(view.Referrer) != 500 {
		t.Errorf("referrer length = %d, want 500", len(view.Referrer))
	}
	if len(view.SessionID) != 100 {
		t.Errorf("session_id length = %d, want 100", len(view.SessionID))
	}
}

func TestLog_TruncatesMultibytePathAtRuneBoundary(t *testing.T) {
	repo := &mockPageViewRepo{}
	svc := NewPageViewService(repo)

	view := svc.Log(context.Background(), model.PageViewInput{
		Path: "/" + strings.Repeat("ü", 250),
	})
	if view == nil {
		t.Fatal("expected a stored page view")
	}
	if !utf8.ValidString(view.PagePath) {
		t.Error("truncated page_path is not valid UTF-8")
	}
	if got := utf8.RuneCountInString(view.PagePath); got != 200 {
		t.Errorf("page_path runes = %d, want 200", got)
	}
}

func TestLog_NeverRejectsSparseInput(t *testing.T) {
	repo := &mockPageViewRepo{}
	svc := NewPageViewService(repo)

	view := svc.Log(context.Background(), model.PageViewInput{Path: "/pricing"})
	if view == nil {
		t.Fatal("expected a stored page view")
	}
	if view.IPAddress != "" || view.UserAgent != "" || view.Referrer != "" || view.SessionID != "" {
		t.Errorf("absent fields must stay empty: %+v", view)
	}
	if len(repo.views) != 1 {
		t.Errorf("stored views = %d, want 1", len(repo.views))
	}
}

func TestLog_StorageFailureReturnsNil(t *testing.T) {
	repo := &mockPageViewRepo{saveErr: errors.New("insert failed")}
	svc := NewPageViewService(repo)

	if view := svc.Log(context.Background(), model.PageViewInput{Path: "/"}); view != nil {
		t.Errorf("view = %+v, want nil on storage failure", view)
	}
}
