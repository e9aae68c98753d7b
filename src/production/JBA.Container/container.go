package container

import (
	"context"
	"fmt"
	"sync"

	battery "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.ApiService/implementation/battery"
	config "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Config"
	client "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.JoanClient"
	logger "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Logger"
	notifier "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Notifier"
	implementation "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Repository/Implementation"
)

// Container manages dependencies and their lifecycle
type Container struct {
	config *config.Config
	logger *logger.Logger

	joanClient     *client.JoanClient
	slackNotifier  *notifier.SlackNotifier
	nameRepo       *implementation.StaticNameRepository
	batteryService *battery.Service

	// Mutex for thread-safe access
	mu sync.Mutex

	// Cleanup functions
	cleanupFuncs []func() error
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	log := logger.NewLogger(&cfg.Logging)

	return &Container{
		config: cfg,
		logger: log,
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.logger
}

// GetJoanClient returns the Joan portal client
func (c *Container) GetJoanClient() *client.JoanClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.joanClient == nil {
		c.joanClient = client.NewJoanClient(&c.config.Joan)
	}
	return c.joanClient
}

// GetSlackNotifier returns the Slack notifier
func (c *Container) GetSlackNotifier() *notifier.SlackNotifier {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.slackNotifier == nil {
		c.slackNotifier = notifier.NewSlackNotifier(&c.config.Alerting, c.logger)
	}
	return c.slackNotifier
}

// GetNameRepository returns the static device name repository
func (c *Container) GetNameRepository() *implementation.StaticNameRepository {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nameRepo == nil {
		c.nameRepo = implementation.NewStaticNameRepository()
	}
	return c.nameRepo
}

// GetBatteryService returns the battery check service
func (c *Container) GetBatteryService() *battery.Service {
	joanClient := c.GetJoanClient()
	slackNotifier := c.GetSlackNotifier()
	nameRepo := c.GetNameRepository()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.batteryService == nil {
		c.batteryService = battery.NewService(
			joanClient,
			nameRepo,
			slackNotifier,
			c.config.Alerting.BatteryThreshold,
			c.logger,
		)
	}
	return c.batteryService
}

// AddCleanupFunc adds a cleanup function
func (c *Container) AddCleanupFunc(fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleanupFuncs = append(c.cleanupFuncs, fn)
}

// Shutdown gracefully shuts down the container and all its dependencies
func (c *Container) Shutdown(ctx context.Context) error {
	c.logger.Info("Shutting down container...")

	// Execute cleanup functions in reverse order
	for i := len(c.cleanupFuncs) - 1; i >= 0; i-- {
		if err := c.cleanupFuncs[i](); err != nil {
			c.logger.ErrorWithError(err, "Error during cleanup")
		}
	}

	c.logger.Info("Container shutdown complete")
	return nil
}
