package netcalc

import (
	"arfcast/libs/netcalc/libs"
	"strconv"
)

type Result struct {
	Network  string
	Uplink   float64
	Downlink float64
}

type InvalidChannelError struct {
	Channel int
}

func (e *InvalidChannelError) Error() string {
	return "ARFCN " + strconv.Itoa(e.Channel) + " is not in any known network range"
}

// Find the owning network name of an ARFCN
func DetectNetwork(channel int) (string, bool) {
	network, found := libs.DetectNetwork(channel)
	if !found {
		return "", false
	}
	return libs.Netplans[network].Name, true
}

// Resolve an ARFCN to its uplink/downlink pair (MHz, unrounded)
func ComputeFrequencies(channel int) (Result, error) {
	network, found := libs.DetectNetwork(channel)
	if !found {
		return Result{}, &InvalidChannelError{Channel: channel}
	}
	uplink, downlink := libs.GetLinearFrequencies(network, channel)
	return Result{Network: libs.Netplans[network].Name, Uplink: uplink, Downlink: downlink}, nil
}

func GetCenterFrequency(uplink float64, downlink float64) float64 {
	return (uplink + downlink) / 2
}

// Advertised spacing of a network, 0 if the name is unknown
func GetChannelSpacing(network string) float64 {
	for _, n := range libs.NetworkOrder {
		if libs.Netplans[n].Name == network {
			return libs.Netplans[n].Spacing
		}
	}
	return 0.0
}

// Capability sheet of a network, empty record if the name is unknown
func GetCapabilities(network string) libs.Capabilities {
	for _, n := range libs.NetworkOrder {
		if libs.Netplans[n].Name == network {
			return libs.Netplans[n].Caps
		}
	}
	return libs.Capabilities{}
}

// Plans in scan order, for the reference chart
func GetNetworks() []libs.NetPlan {
	var plans []libs.NetPlan = make([]libs.NetPlan, 0, len(libs.NetworkOrder))
	for _, n := range libs.NetworkOrder {
		plans = append(plans, libs.Netplans[n])
	}
	return plans
}
