package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wellness/internal/i18n"
)

func TestNewMountsStartRoute(t *testing.T) {
	cases := []struct {
		route string
		check func(screen) bool
	}{
		{route: "", check: func(s screen) bool { _, ok := s.(*loginScreen); return ok }},
		{route: "/register", check: func(s screen) bool { _, ok := s.(*registerScreen); return ok }},
		{route: "/chatbot/", check: func(s screen) bool { _, ok := s.(*chatScreen); return ok }},
		{route: "/reset-password", check: func(s screen) bool { _, ok := s.(*resetRequestScreen); return ok }},
	}
	for _, tc := range cases {
		m := newTestModel(t, &fakeClient{}, tc.route)
		if !tc.check(m.active) {
			t.Fatalf("route %q mounted %T", tc.route, m.active)
		}
		if m.mount != 1 {
			t.Fatalf("route %q: expected mount 1, got %d", tc.route, m.mount)
		}
	}
}

func TestUnknownRouteRendersEmptyContent(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, "/nowhere")
	if m.active != nil {
		t.Fatalf("unknown route should mount nothing, got %T", m.active)
	}
	view := m.View()
	if !strings.Contains(view, "Menu") {
		t.Fatal("sidebar should still render on an unknown route")
	}
	if cmd := press(m, tea.KeyEnter); cmd != nil {
		t.Fatal("keys on an empty content pane should do nothing")
	}
}

func TestResetLinkCarriesToken(t *testing.T) {
	for _, raw := range []string{
		"/reset-password/confirm?token=abc123",
		"http://localhost:3000/reset-password/confirm?token=abc123",
	} {
		m := newTestModel(t, &fakeClient{}, raw)
		s, ok := m.active.(*resetConfirmScreen)
		if !ok {
			t.Fatalf("%s mounted %T", raw, m.active)
		}
		if s.token != "abc123" {
			t.Fatalf("%s: token = %q", raw, s.token)
		}
	}
}

func TestSidebarNavigation(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, routeLogin)

	press(m, tea.KeyEsc)
	if m.focus != focusSidebar {
		t.Fatal("esc should move focus to the sidebar")
	}
	if m.sidebarCursor != 0 {
		t.Fatalf("cursor should start on the active link, got %d", m.sidebarCursor)
	}
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)

	if _, ok := m.active.(*registerScreen); !ok {
		t.Fatalf("expected register screen, got %T", m.active)
	}
	if m.location.path != routeRegister {
		t.Fatalf("location = %q", m.location)
	}
	if m.mount != 2 {
		t.Fatalf("expected mount 2, got %d", m.mount)
	}
	if m.focus != focusScreen {
		t.Fatal("opening a link should return focus to the screen")
	}
}

func TestNavigateToCurrentLocationKeepsScreen(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, routeLogin)
	before := m.active.(*loginScreen)
	before.form.SetValue(i18n.KeyEmail, "kept@example.com")

	if cmd := m.navigate("/"); cmd != nil {
		t.Fatal("re-opening the mounted location should not produce a command")
	}
	if m.active != screen(before) || m.mount != 1 {
		t.Fatal("screen should not be rebuilt")
	}
	if got := before.form.Value(i18n.KeyEmail); got != "kept@example.com" {
		t.Fatalf("field value lost: %q", got)
	}
}

func TestStaleJobResultIsDropped(t *testing.T) {
	client := &fakeClient{loginErr: errors.New("boom")}
	m := newTestModel(t, client, routeLogin)
	login := m.active.(*loginScreen)
	login.form.SetValue(i18n.KeyEmail, "demo@example.com")
	login.form.SetValue(i18n.KeyPassword, "secret")

	cmd := press(m, tea.KeyEnter)
	if m.jobs.Running() != 1 {
		t.Fatalf("expected one running job, got %d", m.jobs.Running())
	}

	m.navigate(routeRegister)
	follow := deliver(t, m, cmd)

	if len(follow) != 0 {
		t.Fatalf("dropped result should not produce commands, got %d", len(follow))
	}
	if m.jobs.Running() != 0 {
		t.Fatalf("dropped result should still finish the job, got %d running", m.jobs.Running())
	}
	if login.status != "" {
		t.Fatalf("unmounted screen should not change, status=%q", login.status)
	}
	register := m.active.(*registerScreen)
	if register.status != "" {
		t.Fatalf("new screen should not see the old result, status=%q", register.status)
	}
}

func TestRedirectFromUnmountedScreenIsDropped(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, routeLogin)
	stale := m.mount
	m.navigate(routeRegister)

	m.Update(navigateMsg{mount: stale, to: routeChat})

	if m.location.path != routeRegister {
		t.Fatalf("stale redirect navigated to %q", m.location)
	}
}

func TestLocaleSwitchKeepsScreenState(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(t, client, routeChat)
	chat := m.active.(*chatScreen)

	typeText(m, "hello")
	deliver(t, m, press(m, tea.KeyEnter))
	typeText(m, "draft")
	if len(chat.transcript) != 3 {
		t.Fatalf("expected 3 transcript entries, got %d", len(chat.transcript))
	}

	press(m, tea.KeyEsc)
	for m.sidebarCursor < sidebarLocaleRow {
		press(m, tea.KeyDown)
	}
	press(m, tea.KeyRight)

	if m.labels.Current() != i18n.Hindi {
		t.Fatalf("locale = %q, want %q", m.labels.Current(), i18n.Hindi)
	}
	if m.active != screen(chat) {
		t.Fatal("switching locale should not remount the screen")
	}
	if len(chat.transcript) != 3 {
		t.Fatalf("transcript changed: %d entries", len(chat.transcript))
	}
	if chat.input.Value() != "draft" {
		t.Fatalf("draft lost: %q", chat.input.Value())
	}
	if view := chat.View(m.labels); !strings.Contains(view, "चैटबॉट") {
		t.Fatal("title should render in Hindi")
	}

	press(m, tea.KeyLeft)
	if m.labels.Current() != i18n.English {
		t.Fatalf("left should cycle back, got %q", m.labels.Current())
	}
}

func TestLocaleSwitchKeepsFormValues(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, routeLogin)
	login := m.active.(*loginScreen)
	login.form.SetValue(i18n.KeyEmail, "demo@example.com")

	m.focusSidebar()
	m.sidebarCursor = sidebarLocaleRow
	press(m, tea.KeyEnter)

	if m.labels.Current() != i18n.Hindi {
		t.Fatalf("enter on the selector should cycle, got %q", m.labels.Current())
	}
	if got := login.form.Value(i18n.KeyEmail); got != "demo@example.com" {
		t.Fatalf("field value lost: %q", got)
	}
	view := login.View(m.labels)
	if !strings.Contains(view, "लॉगिन") || !strings.Contains(view, "पासवर्ड") {
		t.Fatal("login labels should render in Hindi")
	}
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, routeChat)
	typeText(m, "hi")
	cmd := press(m, tea.KeyEnter)
	if !m.spinning {
		t.Fatal("spinner should start with the request")
	}
	deliver(t, m, cmd)
	if _, next := m.Update(m.spinner.Tick()); next != nil {
		t.Fatal("spinner should stop ticking once no jobs run")
	}
	if m.spinning {
		t.Fatal("spinner should be idle")
	}
}

func TestStatusBarShowsBackend(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, routeLogin)
	if !strings.Contains(m.statusBarView(), "http://fake.local") {
		t.Fatal("status bar should show the API base URL")
	}
}
