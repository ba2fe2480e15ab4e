package libs

import (
	"arfcast/libs/jsonreader"
	"arfcast/libs/netcalc/libs"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"github.com/dustin/go-humanize"
	"golang.org/x/exp/maps"
)

func FormatMHZ(freq float64) string {
	return fmt.Sprintf("%.3f MHz", freq)
}

func FormatHZ(freq float64) string {
	return humanize.Comma(int64(math.Round(freq * 1e6))) + " Hz"
}

func FormatSpacing(spacing float64) string {
	return fmt.Sprintf("%.1f MHz", spacing)
}

func FormatRanges(ranges []libs.ChannelRange) string {
	var parts []string
	for _, chrange := range ranges {
		parts = append(parts, strconv.Itoa(chrange.Start) + "-" + strconv.Itoa(chrange.End))
	}
	return strings.Join(parts, ", ")
}

func GetRow1(color Colors, arfcn string, calcCount int, elapsedTime time.Time) string {
	var row1 string = color.White + "[" + color.Orange + "ARFCN" + color.White + "] " + farfcn(arfcn) + color.White + " [" + color.Orange + "CALCS" + color.White + "] " + GetCapsFormat(strconv.Itoa(calcCount), 3, " ") + color.White + " [" + color.Orange + "ELAPSED TIME" + color.White + "] " + SecondsToHMS(int(time.Since(elapsedTime).Seconds()))
	return "\n" + row1 + "\n\n"
}

func GetRow2(color Colors) string {
	var row2 string
	row2 += color.White + "Press [" + color.Yellow + "0-9" + color.White + "] or [" + color.Yellow + "-" + color.White + "] to " + color.Red + "TYPE " + color.White + "an ARFCN\n"
	row2 += color.White + "Press [" + color.Yellow + "BACKSPACE" + color.White + "] to " + color.Red + "DELETE " + color.White + "the last digit\n"
	row2 += color.White + "Press [" + color.Yellow + "ENTER" + color.White + "] to " + color.Red + "CALCULATE" + color.White + "\n"
	row2 += color.White + "Press [" + color.Yellow + "C" + color.White + "] to " + color.Red + "CLEAR " + color.White + "the form\n"
	return row2 + color.White + "Press [" + color.Yellow + "ESC" + color.White + "] or [" + color.Yellow + "CTRL-C" + color.White + "]" + " to " + color.Red + "EXIT" + color.White + "\n"
}

func farfcn(arfcn string) string {
	return arfcn + strings.Repeat("_", 6 - len(arfcn))
}

func GetResultRow(color Colors, caltab CalcTable, viewconf jsonreader.ViewConf) string {
	var network, uplink, downlink, center, spacing string
	if caltab.Done {
		network = caltab.Result.Network
		uplink = FormatMHZ(caltab.Result.Uplink)
		downlink = FormatMHZ(caltab.Result.Downlink)
		center = FormatMHZ(caltab.Center)
		spacing = FormatSpacing(caltab.Spacing)
		if viewconf.ShowHz {
			uplink += " (" + FormatHZ(caltab.Result.Uplink) + ")"
			downlink += " (" + FormatHZ(caltab.Result.Downlink) + ")"
			center += " (" + FormatHZ(caltab.Center) + ")"
		}
	}
	var rowcalc string = "\n" + color.White + "Results\n"
	rowcalc += color.White + ">  " + strings.Repeat("=", 50) + "\n\n"
	var infonames []string = []string{"ARFCN", "NETWORK", "UPLINK", "DOWNLINK", "CENTER", "SPACING"}
	for idxname, infoelem := range []string{caltab.ARFCN, network, uplink, downlink, center, spacing} {
		rowcalc += color.White + "     | [" + color.Blue + infonames[idxname] + color.White + "]" + strings.Repeat(" ", 11-len(infonames[idxname])) + PlaceholderTest(infoelem) + "\n"
	}
	if len(caltab.ErrMsg) > 0 {
		rowcalc += color.White + "     |\n"
		rowcalc += color.White + "     | [" + color.Red + "ERROR" + color.White + "] " + caltab.ErrMsg + "\n"
	}
	rowcalc += "\n" + color.White + "   " + strings.Repeat("=", 50) + "\n"
	if viewconf.ShowCaps {
		var capnames []string = []string{"TECHNOLOGY", "MAX-RATE", "FEATURES", "MODULATION"}
		rowcalc += "\n" + color.White + "Network Capabilities\n"
		rowcalc += color.White + ">  " + strings.Repeat("=", 50) + "\n\n"
		for idxname, capelem := range []string{caltab.Caps.Technology, caltab.Caps.MaxDataRate, caltab.Caps.Features, caltab.Caps.Modulation} {
			rowcalc += color.White + "     | [" + color.Purple + capnames[idxname] + color.White + "]" + strings.Repeat(" ", 11-len(capnames[idxname])) + PlaceholderTest(capelem) + "\n"
		}
		rowcalc += "\n" + color.White + "   " + strings.Repeat("=", 50) + "\n"
	}
	return rowcalc
}

func GetDialerRow(color Colors, dialercodes map[string]string) string {
	var platforms []string = maps.Keys(dialercodes)
	sort.Strings(platforms)
	var maxlen int = 0
	for _, platform := range platforms {
		if len(platform) > maxlen {
			maxlen = len(platform)
		}
	}
	var rowdialer string = "\n" + color.White + "Network Info Dialer Codes\n"
	rowdialer += color.White + ">  " + strings.Repeat("=", 50) + "\n\n"
	for _, platform := range platforms {
		rowdialer += color.White + "     | [" + color.Green + strings.ToUpper(platform) + color.White + "]" + strings.Repeat(" ", maxlen+1-len(platform)) + dialercodes[platform] + "\n"
	}
	rowdialer += "\n" + color.White + "   " + strings.Repeat("=", 50) + "\n"
	return rowdialer
}

func GetCapsFormat(n string, length int, ch string) string {
	if len(n) >= length {
		return n
	}
	return strings.Repeat(ch, length - len(n)) + n
}
