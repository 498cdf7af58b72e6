package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/ReptilePvP/Cores3Cloud/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"onOff": func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>IR Thermometer</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.temp { font-size: 2em; font-weight: bold; }
.on { color: green; font-weight: bold; }
.off { color: #888; }
.success { color: green; }
.warning { color: orange; }
.error { color: red; }
.connected { color: green; }
.disconnected { color: red; }
</style>
</head>
<body>
<h1>IR Thermometer</h1>

<p class="temp">{{.DisplayTemp}}</p>
{{if .Message}}<p class="{{.Level}}">{{.Message}}</p>{{end}}

<h2>State</h2>
<table>
<tr><th>Monitoring</th><td class="{{onOff .Monitoring}}">{{if .Monitoring}}ON{{else}}OFF{{end}}</td></tr>
<tr><th>Screen</th><td>{{.Screen}}</td></tr>
<tr><th>Battery</th><td{{if .LowBattery}} class="error"{{end}}>{{.BatteryPercent}}%{{if .BatteryCharging}} (charging){{end}}</td></tr>
</table>

<h2>Settings</h2>
<table>
<tr><th>Unit</th><td>{{if .Settings.UseCelsius}}°C{{else}}°F{{end}}</td></tr>
<tr><th>Sound</th><td>{{onOff .Settings.SoundEnabled}}</td></tr>
<tr><th>Brightness</th><td>{{.Settings.Brightness}}</td></tr>
<tr><th>Emissivity</th><td>{{printf "%.2f" .Settings.Emissivity}}</td></tr>
<tr><th>Target</th><td>{{printf "%.1f" .Settings.TargetTemp}} °C</td></tr>
<tr><th>Tolerance</th><td>±{{printf "%.1f" .Settings.Tolerance}}</td></tr>
</table>

<h2>Connectivity</h2>
<table>
<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Poll</th><td>{{.Config.PollMs}}ms</td></tr>
<tr><th>Diagnostics</th><td>{{if eq .Config.DiagMs 0}}disabled{{else}}{{.Config.DiagMs}}ms{{end}}</td></tr>
<tr><th>Battery check</th><td>{{if eq .Config.BatteryMs 0}}disabled{{else}}{{.Config.BatteryMs}}ms{{end}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
<tr><th>Prefs DB</th><td>{{.Config.DBPath}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Snapshot has Uptime() method but template needs a Duration field.
	data := struct {
		status.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
