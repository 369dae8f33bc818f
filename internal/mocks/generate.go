// Package mocks provides mock implementations for testing the eventshell ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// ports interfaces. The mocks are generated using go:generate directives and provide
// a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	users := mocks.NewMockUserDirectory(ctrl)
//	users.EXPECT().FindByEmail(gomock.Any(), "ana@x.com").Return(nil, nil)
package mocks

// Generate mocks for the session store and both backend collections from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_mock.go github.com/target/eventshell/internal/ports SessionStore,UserDirectory,EventCatalog
