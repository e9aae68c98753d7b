package api_models

import (
	jbamodels "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Models"
)

// DeviceListResponse represents the Joan portal device listing response
type DeviceListResponse struct {
	Results []jbamodels.Device `json:"results"`
}
