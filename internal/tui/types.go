package tui

import "time"

type focusZone int

const (
	focusScreen focusZone = iota
	focusSidebar
)

type formPhase int

const (
	phaseIdle formPhase = iota
	phaseSubmitting
	phaseSucceeded
	phaseFailed
)

const (
	routeLogin        = "/"
	routeRegister     = "/register"
	routeChat         = "/chatbot"
	routeResetRequest = "/reset-password"
	routeResetConfirm = "/reset-password/confirm"
)

const defaultRedirectDelay = time.Second

// Chat requests are not bound to the logged-in user or the selected
// locale yet; the backend receives these fixed values.
const (
	chatUser     = "testuser"
	chatLanguage = "en"
)

const markFailure = "❌"

const (
	loginSucceeded   = "✅ Login successful!"
	loginFailed      = "❌ Login failed. Please try again."
	loginUnreachable = "⚠️ Backend not reachable. Please try again later."

	registerSucceeded = "✅ Registration successful! You can now log in."
	registerFailed    = "❌ Registration failed. Please try again."

	resetRequestSent        = "✅ Reset link sent to your email. Check your inbox!"
	resetRequestFailed      = "❌ Something went wrong"
	resetRequestUnreachable = "⚠️ Backend not reachable."

	resetConfirmed          = "✅ Password reset successful! You can now log in."
	resetConfirmUnreachable = "⚠️ Server error, try again later."
	resetTokenMissing       = "❌ Invalid or missing token"

	chatGreeting    = "Hello! I am your wellness assistant."
	chatEmptyReply  = "⚠️ No response from bot"
	chatUnreachable = "⚠️ Backend not reachable"
)

const (
	hintRequired = "Please fill out this field."
	hintEmail    = "Please enter an email address."
	hintNumber   = "Please enter a number."
)

const (
	minContentWidth = 40
	sidebarWidth    = 28
	statusBarHeight = 1
	chatChrome      = 7
)
