// Package auth verifies candidate identity tokens on the submission route.
// The identity provider itself is external; this package only checks the
// ID token it issues.
package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// InitializeFirebase initializes the Firebase Admin SDK and returns an Auth
// client. An empty credentials path means the gate is disabled.
func InitializeFirebase(ctx context.Context, credentialsPath string) (*auth.Client, error) {
	if credentialsPath == "" {
		return nil, nil
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	return authClient, nil
}
