package battery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Config"
	logger "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Logger"
	jbamodels "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Models"
	implementation "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Repository/Implementation"
)

type fakeSource struct {
	token      string
	tokenErr   error
	devices    []jbamodels.Device
	devicesErr error
}

func (f *fakeSource) Token(_ context.Context) (string, error) {
	return f.token, f.tokenErr
}

func (f *fakeSource) ListDevices(_ context.Context, _ string) ([]jbamodels.Device, error) {
	return f.devices, f.devicesErr
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, message string) error {
	f.sent = append(f.sent, message)
	return f.err
}

func intPtr(v int) *int { return &v }

func device(uuid string, battery *int, room string) jbamodels.Device {
	d := jbamodels.Device{UUID: uuid, Battery: battery}
	if room != "" {
		d.RoomResources = []jbamodels.RoomResource{{Name: room}}
	}
	return d
}

func newTestService(source *fakeSource, notifier *fakeNotifier, threshold int) *Service {
	log := logger.NewLogger(&config.LoggingConfig{Level: "error", Format: "json"})
	return NewService(source, implementation.NewStaticNameRepository(), notifier, threshold, log)
}

func TestBuildLinesThresholdIsStrict(t *testing.T) {
	s := newTestService(&fakeSource{}, &fakeNotifier{}, 90)

	israel, us := s.BuildLines([]jbamodels.Device{
		device("uuid-1", intPtr(89), ""),
		device("uuid-2", intPtr(90), ""),
		device("uuid-4", intPtr(95), ""),
	})

	assert.Equal(t, []string{"- Israel Office - Room A: 89%"}, israel)
	assert.Empty(t, us)
}

func TestBuildLinesSkipsMissingBattery(t *testing.T) {
	s := newTestService(&fakeSource{}, &fakeNotifier{}, 90)

	israel, us := s.BuildLines([]jbamodels.Device{
		device("uuid-1", nil, ""),
		device("uuid-4", nil, "Room D"),
	})

	assert.Empty(t, israel)
	assert.Empty(t, us)
}

func TestBuildLinesCaseInsensitiveLookup(t *testing.T) {
	s := newTestService(&fakeSource{}, &fakeNotifier{}, 90)

	israel, us := s.BuildLines([]jbamodels.Device{
		device("UUID-1", intPtr(50), ""),
		device("Uuid-5", intPtr(60), ""),
	})

	assert.Equal(t, []string{"- Israel Office - Room A: 50%"}, israel)
	assert.Equal(t, []string{"- US Office - Room E: 60%"}, us)
}

func TestBuildLinesUnknownDeviceFallsBackToRoomName(t *testing.T) {
	s := newTestService(&fakeSource{}, &fakeNotifier{}, 90)

	israel, us := s.BuildLines([]jbamodels.Device{
		device("uuid-77", intPtr(30), "Floor 3 - Kitchen"),
		device("UUID-88", intPtr(40), ""),
	})

	assert.Empty(t, israel)
	assert.Equal(t, []string{
		"- Floor 3 - Kitchen: 30%",
		"- uuid-88: 40%",
	}, us)
}

func TestComposeMessageBothRegions(t *testing.T) {
	s := newTestService(&fakeSource{}, &fakeNotifier{}, 90)

	msg := s.ComposeMessage(
		[]string{"- Israel Office - Room A: 50%"},
		[]string{"- US Office - Room D: 60%"},
	)

	assert.Equal(t,
		":flag-il: *Israel devices below 90%*:alert:\n"+
			"- Israel Office - Room A: 50%\n"+
			"\n"+
			":us: *US devices below 90%*:alert:\n"+
			"- US Office - Room D: 60%",
		msg)
}

func TestComposeMessageSingleRegionHasNoBlankLine(t *testing.T) {
	s := newTestService(&fakeSource{}, &fakeNotifier{}, 90)

	msg := s.ComposeMessage(nil, []string{"- US Office - Room D: 60%"})
	assert.Equal(t,
		":us: *US devices below 90%*:alert:\n- US Office - Room D: 60%",
		msg)
}

func TestRunCheckSendsAlert(t *testing.T) {
	source := &fakeSource{
		token: "tok",
		devices: []jbamodels.Device{
			device("UUID-1", intPtr(50), ""),
			device("uuid-4", intPtr(95), ""),
		},
	}
	notifier := &fakeNotifier{}
	s := newTestService(source, notifier, 90)

	result, err := s.RunCheck(context.Background())
	require.NoError(t, err)
	assert.True(t, result.AlertSent)
	assert.Contains(t, result.Message, "- Israel Office - Room A: 50%")
	assert.NotContains(t, result.Message, "Room D")

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, result.Message, notifier.sent[0])
}

func TestRunCheckNoQualifyingDevices(t *testing.T) {
	source := &fakeSource{
		token: "tok",
		devices: []jbamodels.Device{
			device("uuid-1", intPtr(99), ""),
			device("uuid-4", nil, ""),
		},
	}
	notifier := &fakeNotifier{}
	s := newTestService(source, notifier, 90)

	result, err := s.RunCheck(context.Background())
	require.NoError(t, err)
	assert.False(t, result.AlertSent)
	assert.Equal(t, NoAlertMessage, result.Message)
	assert.Empty(t, notifier.sent)
}

func TestRunCheckNotifierFailureIsNotFatal(t *testing.T) {
	source := &fakeSource{
		token:   "tok",
		devices: []jbamodels.Device{device("uuid-1", intPtr(10), "")},
	}
	notifier := &fakeNotifier{err: errors.New("webhook down")}
	s := newTestService(source, notifier, 90)

	result, err := s.RunCheck(context.Background())
	require.NoError(t, err)
	assert.True(t, result.AlertSent)
}

func TestRunCheckTokenFailure(t *testing.T) {
	source := &fakeSource{tokenErr: errors.New("401 unauthorized")}
	notifier := &fakeNotifier{}
	s := newTestService(source, notifier, 90)

	_, err := s.RunCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token")
	assert.Empty(t, notifier.sent)
}

func TestRunCheckDeviceListFailure(t *testing.T) {
	source := &fakeSource{token: "tok", devicesErr: errors.New("upstream 500")}
	s := newTestService(source, &fakeNotifier{}, 90)

	_, err := s.RunCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch devices")
}
