// Package firebase adapts Firebase Authentication and Cloud Firestore to the
// credential and profile store interfaces.
package firebase

import (
	"context"
	"log/slog"

	"railmadad/config"
	"railmadad/internal/domain/lifecycle"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app from the configured service account.
// Without a credentials path the application default credentials are used.
func NewApp(cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, errors.New("firebase project id is not configured")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// NewAuthClient returns the Admin SDK auth client used to read user records.
func NewAuthClient(app *firebase.App) (*auth.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

// FirestoreParams holds dependencies for the Firestore client, injected by Fx.
type FirestoreParams struct {
	fx.In
	fx.Lifecycle

	App    *firebase.App
	Logger *slog.Logger
}

// NewFirestoreClient returns the Firestore client and closes it on stop.
func NewFirestoreClient(params FirestoreParams) (*firestore.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := params.App.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
