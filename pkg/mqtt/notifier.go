package mqtt

import (
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/BTStudios/ModTrackGo/pkg/models"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
)

// CheckPublisher publishes finished quota check results to the broker so
// external consumers (dashboards, audit sinks) can follow along.
type CheckPublisher struct {
	mc *MqttCommunicator
}

// NewCheckPublisher wraps a communicator as a quota check notifier.
func NewCheckPublisher(mc *MqttCommunicator) *CheckPublisher {
	return &CheckPublisher{mc: mc}
}

// QuotaCheckCompleted publishes one message per completed guild check on
// modtrack/checks/<guildId>.
func (p *CheckPublisher) QuotaCheckCompleted(settings *models.GuildSettings, results []quota.EvaluationResult) {
	if p.mc == nil || !p.mc.IsConnected() {
		return
	}

	payload := map[string]interface{}{
		"guildId":   settings.GuildID,
		"lastCheck": settings.LastCheck,
		"results":   results,
	}

	topic := fmt.Sprintf("modtrack/checks/%s", settings.GuildID)
	if err := p.mc.Publish(topic, payload); err != nil {
		logger.Error(fmt.Sprintf("Failed to publish check results for guild %s: %v", settings.GuildID, err), "MQTT")
	}
}

var _ quota.Notifier = (*CheckPublisher)(nil)
