package libs

import (
	"fmt"
	"testing"
)

func TestDetectNetwork(t *testing.T) {
	tests := []struct {
		channel int
		network Network
		found   bool
	}{
		{1, GSM900, true},
		{124, GSM900, true},
		{128, GSM900, true},
		{251, GSM900, true},
		{512, GSM1800, true},
		{885, GSM1800, true},
		{1024, GSM1800, true},
		{1885, GSM1800, true},
		{10562, UMTS2100, true},
		{10687, UMTS2100, true},
		{300, LTE1800, true},
		{379, LTE1800, true},
		{0, 0, false},
		{125, 0, false},
		{252, 0, false},
		{1023, 0, false},
		{10561, 0, false},
	}
	for _, tt := range tests {
		network, found := DetectNetwork(tt.channel)
		if found != tt.found {
			t.Errorf("DetectNetwork(%d): expected found=%v, got %v", tt.channel, tt.found, found)
			continue
		}
		if found && network != tt.network {
			t.Errorf("DetectNetwork(%d): expected network %v, got %v", tt.channel, tt.network, network)
		}
	}
}

func TestRangeOf(t *testing.T) {
	tests := []struct {
		name    string
		network Network
		channel int
		chrange ChannelRange
		found   bool
	}{
		{"gsm 900 low", GSM900, 124, ChannelRange{Start: 1, End: 124}, true},
		{"gsm 900 high", GSM900, 251, ChannelRange{Start: 128, End: 251}, true},
		{"gsm 1800 low", GSM1800, 700, ChannelRange{Start: 512, End: 885}, true},
		{"gsm 1800 high", GSM1800, 1024, ChannelRange{Start: 1024, End: 1885}, true},
		{"gsm 900 hole", GSM900, 126, ChannelRange{}, false},
		{"lte 1800 below", LTE1800, 299, ChannelRange{}, false},
		{"umts 2100 foreign", UMTS2100, 1, ChannelRange{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chrange, found := RangeOf(tt.network, tt.channel)
			if found != tt.found || chrange != tt.chrange {
				t.Errorf("RangeOf(%v, %d): expected (%+v, %v), got (%+v, %v)", tt.network, tt.channel, tt.chrange, tt.found, chrange, found)
			}
		})
	}
}

func TestGetLinearFrequencies(t *testing.T) {
	// Range starts carry no offset, the base pair comes back untouched
	starts := []struct {
		network  Network
		channel  int
		uplink   float64
		downlink float64
	}{
		{GSM900, 1, 880.2, 925.2},
		{GSM900, 128, 880.2, 925.2},
		{GSM1800, 512, 1710.0, 1805.0},
		{GSM1800, 1024, 1710.0, 1805.0},
		{UMTS2100, 10562, 1922.4, 2112.4},
		{LTE1800, 300, 1710.0, 1805.0},
	}
	for _, tt := range starts {
		uplink, downlink := GetLinearFrequencies(tt.network, tt.channel)
		if uplink != tt.uplink || downlink != tt.downlink {
			t.Errorf("GetLinearFrequencies(%v, %d): expected (%v, %v), got (%v, %v)", tt.network, tt.channel, tt.uplink, tt.downlink, uplink, downlink)
		}
	}
	offsets := []struct {
		network  Network
		channel  int
		uplink   string
		downlink string
	}{
		{GSM900, 251, "904.800", "949.800"},
		{GSM1800, 885, "1784.600", "1879.600"},
		{UMTS2100, 10687, "1947.400", "2137.400"},
		{LTE1800, 379, "1717.900", "1812.900"},
	}
	for _, tt := range offsets {
		uplink, downlink := GetLinearFrequencies(tt.network, tt.channel)
		if got := fmt.Sprintf("%.3f", uplink); got != tt.uplink {
			t.Errorf("GetLinearFrequencies(%v, %d): expected uplink %s, got %s", tt.network, tt.channel, tt.uplink, got)
		}
		if got := fmt.Sprintf("%.3f", downlink); got != tt.downlink {
			t.Errorf("GetLinearFrequencies(%v, %d): expected downlink %s, got %s", tt.network, tt.channel, tt.downlink, got)
		}
	}
	if uplink, downlink := GetLinearFrequencies(GSM900, 1000); uplink != 0 || downlink != 0 {
		t.Errorf("channel outside the network ranges must yield zeros, got (%v, %v)", uplink, downlink)
	}
}

func TestNetplansTable(t *testing.T) {
	if len(NetworkOrder) != len(Netplans) {
		t.Fatalf("scan order lists %d networks, table holds %d", len(NetworkOrder), len(Netplans))
	}
	seen := make(map[string]bool)
	for _, network := range NetworkOrder {
		plan, exist := Netplans[network]
		if !exist {
			t.Fatalf("network %v missing from Netplans", network)
		}
		if plan.Name == "" || seen[plan.Name] {
			t.Errorf("network %v: empty or duplicated name %q", network, plan.Name)
		}
		seen[plan.Name] = true
		if len(plan.Ranges) == 0 {
			t.Errorf("%s: no channel ranges", plan.Name)
		}
		for _, chrange := range plan.Ranges {
			if chrange.Start > chrange.End {
				t.Errorf("%s: inverted range %+v", plan.Name, chrange)
			}
		}
		if plan.Step <= 0 || plan.Spacing <= 0 {
			t.Errorf("%s: step %v and spacing %v must be positive", plan.Name, plan.Step, plan.Spacing)
		}
		if plan.Caps == (Capabilities{}) {
			t.Errorf("%s: empty capability record", plan.Name)
		}
	}
}
