//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/enyelsequeira/gym-be/internal/app"
)

func InitializeApp() (*app.App, error) {
	panic(wire.Build(
		ConfigSet,
		ObservabilitySet,
		DatabaseSet,
		SecuritySet,
		RepositorySet,
		ServiceSet,
		HTTPSet,
		AppSet,
	))
}
