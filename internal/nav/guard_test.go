package nav

import "testing"

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name          string
		target        Target
		authenticated bool
		want          Decision
	}{
		{"protected without session", TargetEvents, false, RedirectLogin},
		{"landing without session", TargetDashboard, false, RedirectLogin},
		{"dynamic edit without session", EditEvent("42"), false, RedirectLogin},
		{"login with session", TargetLogin, true, RedirectLanding},
		{"register with session", TargetRegister, true, RedirectLanding},
		{"login without session", TargetLogin, false, Proceed},
		{"register without session", TargetRegister, false, Proceed},
		{"protected with session", TargetUsers, true, Proceed},
		{"unknown public target", Target("#/banana"), false, Proceed},
		{"not-found with session", TargetNotFound, true, Proceed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Evaluate(tc.target, tc.authenticated); got != tc.want {
				t.Errorf("Evaluate(%q, %v) = %v, want %v",
					tc.target, tc.authenticated, got, tc.want)
			}
		})
	}
}

func TestTargetProtected(t *testing.T) {
	if !TargetDashboard.Protected() {
		t.Error("dashboard should be protected")
	}
	if !EditUser("7").Protected() {
		t.Error("dynamic edit should be protected")
	}
	if TargetLogin.Protected() {
		t.Error("login should not be protected")
	}
	if TargetNotFound.Protected() {
		t.Error("not-found should not be protected")
	}
}

func TestParse(t *testing.T) {
	if got := Parse(""); got != TargetLogin {
		t.Errorf("Parse(\"\") = %q, want login", got)
	}
	if got := Parse("#/dashboard/events"); got != TargetEvents {
		t.Errorf("Parse = %q, want %q", got, TargetEvents)
	}
}
