package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/cleaning-marketplace/internal/config"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
)

// Имена коллекций документного хранилища
const (
	usersCollection        = "users"
	providersCollection    = "providers"
	appointmentsCollection = "appointments"
	paymentsCollection     = "payments"
)

// storeErr оборачивает отказ хранилища в ErrDatabaseError,
// сохраняя исходную причину в цепочке для errors.Is
func storeErr(op string, err error) error {
	return apperrors.ErrDatabaseError.Wrap(fmt.Errorf("%s: %w", op, err))
}

// Client - подключение к Firebase: Firestore и Cloud Messaging
type Client struct {
	app    *firebase.App
	store  *firestore.Client
	logger *zap.Logger
}

func New(ctx context.Context, cfg *config.FirestoreConfig, logger *zap.Logger) (*Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	store, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	logger.Info("Firestore connected",
		zap.String("project_id", cfg.ProjectID),
	)

	return &Client{
		app:    app,
		store:  store,
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	c.logger.Info("Closing Firestore connection")
	return c.store.Close()
}

// Health выполняет пробное чтение, чтобы убедиться, что хранилище доступно
func (c *Client) Health(ctx context.Context) error {
	_, err := c.store.Collection(usersCollection).Limit(1).Documents(ctx).GetAll()
	return err
}

// Store возвращает нижележащий firestore-клиент
func (c *Client) Store() *firestore.Client {
	return c.store
}

// Messaging возвращает клиент Firebase Cloud Messaging
func (c *Client) Messaging(ctx context.Context) (*messaging.Client, error) {
	return c.app.Messaging(ctx)
}
