package libs

// Find the network whose range set contains the channel
func DetectNetwork(channel int) (Network, bool) {
	for _, network := range NetworkOrder {
		for _, chrange := range Netplans[network].Ranges {
			if channel >= chrange.Start && channel <= chrange.End {
				return network, true
			}
		}
	}
	return 0, false
}

// Find the sub-range of a network the channel falls into
func RangeOf(network Network, channel int) (ChannelRange, bool) {
	for _, chrange := range Netplans[network].Ranges {
		if channel >= chrange.Start && channel <= chrange.End {
			return chrange, true
		}
	}
	return ChannelRange{}, false
}

func GetLinearFrequencies(network Network, channel int) (uplink float64, downlink float64) {
	chrange, found := RangeOf(network, channel)
	if !found {
		return 0, 0
	}
	var plan NetPlan = Netplans[network]
	var offset float64 = float64(channel - chrange.Start)
	return plan.Uplink + offset*plan.Step, plan.Downlink + offset*plan.Step
}
