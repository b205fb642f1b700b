package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"gsmarena-backend/internal/gsmarena"

	"github.com/gin-gonic/gin"
)

const (
	ActionBrands  = "brands"
	ActionDevices = "devices"
	ActionDetails = "details"
)

const (
	msgInvalidJson       = "Invalid JSON in request body"
	msgMissingBrandUrl   = "Missing brandUrl parameter"
	msgInvalidBrandUrl   = "Invalid brandUrl parameter"
	msgMissingDeviceUrl  = "Missing deviceUrl parameter"
	msgInvalidDeviceUrl  = "Invalid deviceUrl format"
	msgDeviceNotFound    = "Device not found or invalid response"
	msgInvalidAction     = "Invalid action"
	actionLabelMalformed = "malformed"
	actionLabelUnknown   = "unknown"
)

type actionParams struct {
	Action    string `json:"action" form:"action"`
	BrandUrl  string `json:"brandUrl" form:"brandUrl"`
	DeviceUrl string `json:"deviceUrl" form:"deviceUrl"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// readParams takes parameters from the json body of POST requests and from
// the query string otherwise. An empty body is the same as `{}`.
func readParams(c *gin.Context) (actionParams, error) {
	var params actionParams
	if c.Request.Method != http.MethodPost {
		err := c.ShouldBindQuery(&params)
		return params, err
	}

	body, err := c.GetRawData()
	if err != nil {
		return params, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return params, nil
	}
	err = json.Unmarshal(body, &params)
	return params, err
}

func (s Service) respond(c *gin.Context, action string, status int, body any) {
	s.metrics.observe(action, status)
	c.JSON(status, body)
}

func (s Service) fail(c *gin.Context, action string, status int, message string) {
	s.respond(c, action, status, errorResponse{Error: message})
}

func (s Service) handleAction(c *gin.Context) {
	params, err := readParams(c)
	if err != nil {
		s.fail(c, actionLabelMalformed, http.StatusBadRequest, msgInvalidJson)
		return
	}

	action := params.Action
	if action == "" {
		action = ActionBrands
	}

	switch action {
	case ActionBrands:
		s.handleBrands(c)
	case ActionDevices:
		s.handleDevices(c, params.BrandUrl)
	case ActionDetails:
		s.handleDetails(c, params.DeviceUrl)
	default:
		s.fail(c, actionLabelUnknown, http.StatusBadRequest, msgInvalidAction)
	}
}

func (s Service) handleBrands(c *gin.Context) {
	brands, err := s.api.ListBrands(c.Request.Context())
	if err != nil {
		s.tel.ReportBroken(report_action_brands, err)
		s.fail(c, ActionBrands, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(c, ActionBrands, http.StatusOK, brands)
}

func (s Service) handleDevices(c *gin.Context, brandUrl string) {
	if brandUrl == "" {
		s.fail(c, ActionDevices, http.StatusBadRequest, msgMissingBrandUrl)
		return
	}

	devices, err := s.api.ListDevicesByBrand(c.Request.Context(), brandUrl)
	if errors.Is(err, gsmarena.ErrInvalidUrl) {
		s.fail(c, ActionDevices, http.StatusBadRequest, msgInvalidBrandUrl)
		return
	}
	if err != nil {
		s.tel.ReportBroken(report_action_devices, err, brandUrl)
		s.fail(c, ActionDevices, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(c, ActionDevices, http.StatusOK, devices)
}

func (s Service) handleDetails(c *gin.Context, deviceUrl string) {
	if deviceUrl == "" {
		s.fail(c, ActionDetails, http.StatusBadRequest, msgMissingDeviceUrl)
		return
	}

	id, err := gsmarena.ParseIdentifier(deviceUrl)
	if err != nil {
		s.fail(c, ActionDetails, http.StatusBadRequest, msgInvalidDeviceUrl)
		return
	}

	device, ok := s.api.GetDeviceDetail(c.Request.Context(), id)
	if !ok {
		s.tel.ReportWarning(report_action_details, "device absent", id.String())
		s.fail(c, ActionDetails, http.StatusNotFound, msgDeviceNotFound)
		return
	}
	s.respond(c, ActionDetails, http.StatusOK, device)
}
