package battery

import (
	"context"
	"fmt"
	"strings"

	logger "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Logger"
	jbamodels "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Models"
	interfaces "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Repository/Interfaces"
)

// NoAlertMessage is returned when every device is at or above the threshold
const NoAlertMessage = "No devices below battery threshold."

// DeviceSource provides access to the Joan portal device listing
type DeviceSource interface {
	Token(ctx context.Context) (string, error)
	ListDevices(ctx context.Context, token string) ([]jbamodels.Device, error)
}

// Notifier delivers a formatted alert message
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// CheckResult describes the outcome of a battery check
type CheckResult struct {
	AlertSent bool
	Message   string
}

// Service runs the battery check: fetch devices, group the low ones by
// region, and deliver one combined alert.
type Service struct {
	source    DeviceSource
	names     interfaces.NameRepository
	notifier  Notifier
	threshold int
	logger    *logger.Logger
}

// NewService creates a new battery check service
func NewService(source DeviceSource, names interfaces.NameRepository, notifier Notifier, threshold int, log *logger.Logger) *Service {
	return &Service{
		source:    source,
		names:     names,
		notifier:  notifier,
		threshold: threshold,
		logger:    log.WithComponent("battery-service"),
	}
}

// BuildLines partitions devices below the threshold into per-region bullet
// lines. A device with no battery reading is skipped. Devices missing from
// both name tables fall into the US group, labeled by their first room
// resource name when present, otherwise by raw identifier.
func (s *Service) BuildLines(devices []jbamodels.Device) (israelLines, usLines []string) {
	for _, d := range devices {
		if d.Battery == nil {
			continue
		}
		if *d.Battery >= s.threshold {
			continue
		}

		uuid := strings.ToLower(d.UUID)
		label, region, ok := s.names.Lookup(uuid)
		if !ok {
			label = d.RoomName()
			if label == "" {
				label = uuid
			}
			region = interfaces.RegionUS
		}

		line := fmt.Sprintf("- %s: %d%%", label, *d.Battery)
		if region == interfaces.RegionIsrael {
			israelLines = append(israelLines, line)
		} else {
			usLines = append(usLines, line)
		}
	}
	return israelLines, usLines
}

// ComposeMessage renders the combined alert text: a header plus bullet lines
// per non-empty region, with a blank line between regions when both fired.
func (s *Service) ComposeMessage(israelLines, usLines []string) string {
	parts := make([]string, 0, len(israelLines)+len(usLines)+3)
	if len(israelLines) > 0 {
		parts = append(parts, fmt.Sprintf(":flag-il: *Israel devices below %d%%*:alert:", s.threshold))
		parts = append(parts, israelLines...)
	}
	if len(israelLines) > 0 && len(usLines) > 0 {
		parts = append(parts, "")
	}
	if len(usLines) > 0 {
		parts = append(parts, fmt.Sprintf(":us: *US devices below %d%%*:alert:", s.threshold))
		parts = append(parts, usLines...)
	}
	return strings.Join(parts, "\n")
}

// RunCheck performs a full battery check. Delivery failure is logged but
// does not fail the check.
func (s *Service) RunCheck(ctx context.Context) (*CheckResult, error) {
	s.logger.Info("Requesting access token...")
	token, err := s.source.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	s.logger.Info("Fetching devices list...")
	devices, err := s.source.ListDevices(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch devices: %w", err)
	}
	s.logger.WithField("count", len(devices)).Info("Devices list fetched")

	israelLines, usLines := s.BuildLines(devices)
	if len(israelLines) == 0 && len(usLines) == 0 {
		return &CheckResult{AlertSent: false, Message: NoAlertMessage}, nil
	}

	message := s.ComposeMessage(israelLines, usLines)
	if err := s.notifier.Send(ctx, message); err != nil {
		s.logger.ErrorWithError(err, "Failed to send Slack message")
	}

	return &CheckResult{AlertSent: true, Message: message}, nil
}
