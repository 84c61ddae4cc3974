package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// getChannelsHandler lists the usable channels for a band
//
//	@Summary		List band channels
//	@Description	Returns the channel catalog for a band. The 2.4GHz catalog contains only the three mutually non-overlapping channels; the 5GHz catalog lists the common non-DFS channels with bonding options.
//	@Tags			Catalog
//	@Produce		json
//	@Param			band	path		string	true	"Frequency band"	Enums(2.4GHz, 5GHz)
//	@Success		200		{object}	Response{data=ChannelCatalogResponse}
//	@Failure		400		{object}	Response
//	@Failure		401		{object}	Response
//	@Failure		429		{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/channels/{band} [get]
func getChannelsHandler(w http.ResponseWriter, r *http.Request) {
	band := chi.URLParam(r, "band")
	if err := validateBand(band); err != nil {
		sendError(w, http.StatusBadRequest, StatusBadRequest, sanitizeErrorMessage(err))
		return
	}

	resp := ChannelCatalogResponse{
		Band:     band,
		Channels: channelCatalogInstance.Channels(band),
	}
	if band == Band5GHz {
		resp.WidthOptions = channelCatalogInstance.WidthOptions()
	}
	sendResponse(w, http.StatusOK, StatusOK, resp)
}

// getInterferenceCatalogHandler lists the known interference sources
//
//	@Summary		List interference catalog
//	@Description	Returns the fixed catalog of warehouse interference sources with impact levels and mitigations
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	Response{data=[]InterferenceFinding}
//	@Failure		401	{object}	Response
//	@Failure		429	{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/interference/catalog [get]
func getInterferenceCatalogHandler(w http.ResponseWriter, _ *http.Request) {
	sendResponse(w, http.StatusOK, StatusOK, interferenceSamplerInstance.Catalog())
}

// getDeviceWeightsHandler lists the per-device-type bandwidth weights
//
//	@Summary		List device bandwidth weights
//	@Description	Returns the bandwidth weight table used by the capacity estimator, in Mbps per device. Unrecognized device types use the default weight.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	Response{data=DeviceWeightsResponse}
//	@Failure		401	{object}	Response
//	@Failure		429	{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/capacity/weights [get]
func getDeviceWeightsHandler(w http.ResponseWriter, _ *http.Request) {
	sendResponse(w, http.StatusOK, StatusOK, DeviceWeightsResponse{
		DefaultMbps: DefaultDeviceBandwidthMbps,
		Weights:     capacityEstimatorInstance.Weights(),
	})
}
