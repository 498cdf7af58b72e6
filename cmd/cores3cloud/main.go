// Command cores3cloud runs the infrared-thermometer appliance: it polls
// the IR sensor and touchscreen, drives the display and menus, and mirrors
// readings to the cloud dashboard over MQTT.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ReptilePvP/Cores3Cloud/internal/battery"
	"github.com/ReptilePvP/Cores3Cloud/internal/beeper"
	"github.com/ReptilePvP/Cores3Cloud/internal/config"
	"github.com/ReptilePvP/Cores3Cloud/internal/device"
	"github.com/ReptilePvP/Cores3Cloud/internal/display"
	"github.com/ReptilePvP/Cores3Cloud/internal/sensor"
	"github.com/ReptilePvP/Cores3Cloud/internal/settings"
	"github.com/ReptilePvP/Cores3Cloud/internal/status"
	"github.com/ReptilePvP/Cores3Cloud/internal/telemetry"
	"github.com/ReptilePvP/Cores3Cloud/internal/touch"
	"github.com/ReptilePvP/Cores3Cloud/internal/web"
)

// exitRestart tells the supervisor to start a fresh process so the new
// emissivity takes effect (systemd: Restart=always).
const exitRestart = 3

func main() {
	def := config.Default()

	configPath := flag.String("config", "", "TOML config file (explicit flags win)")
	poll := flag.Duration("poll", def.Poll.Duration, "Control loop tick interval")
	broker := flag.String("broker", def.Broker, "MQTT broker address")
	dbPath := flag.String("db", def.DBPath, "Preferences database path")
	httpAddr := flag.String("http", def.HTTPAddr, "HTTP status address (empty to disable)")
	i2cBus := flag.String("i2c", def.I2CBus, "I2C bus name (empty for first available)")
	sensorAddr := flag.Int("sensor-addr", def.SensorAddr, "IR sensor I2C address")
	displayW := flag.Int("display-w", def.DisplayWidth, "Display width in pixels")
	displayH := flag.Int("display-h", def.DisplayHeight, "Display height in pixels")
	beepChip := flag.String("beep-chip", def.BeeperChip, "GPIO chip for the piezo")
	beepLine := flag.Int("beep-line", def.BeeperLine, "GPIO line for the piezo")
	batteryName := flag.String("battery", def.BatteryName, "Power supply name under /sys/class/power_supply (empty to disable)")
	diag := flag.Duration("diag", def.DiagInterval.Duration, "Diagnostics log interval (0 to disable)")
	batteryEvery := flag.Duration("battery-interval", def.BatteryInterval.Duration, "Battery check interval (0 to disable)")
	modalTimeout := flag.Duration("modal-timeout", def.ModalTimeout.Duration, "Emissivity modal timeout (0 = wait for operator)")
	printTemp := flag.Bool("print-temp", false, "Read one sample, print it and exit")

	flag.Parse()

	if *configPath != "" {
		fileCfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("fatal: %v", err)
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		applyUnsetFlags(fileCfg, set, map[string]*string{
			"broker":  broker,
			"db":      dbPath,
			"http":    httpAddr,
			"i2c":     i2cBus,
			"battery": batteryName,
			"beep-chip": beepChip,
		}, map[string]*int{
			"sensor-addr": sensorAddr,
			"display-w":   displayW,
			"display-h":   displayH,
			"beep-line":   beepLine,
		}, map[string]*time.Duration{
			"poll":             poll,
			"diag":             diag,
			"battery-interval": batteryEvery,
			"modal-timeout":    modalTimeout,
		})
	}

	err := run(runConfig{
		poll:         *poll,
		broker:       *broker,
		dbPath:       *dbPath,
		httpAddr:     *httpAddr,
		i2cBus:       *i2cBus,
		sensorAddr:   uint16(*sensorAddr),
		displayW:     *displayW,
		displayH:     *displayH,
		beepChip:     *beepChip,
		beepLine:     *beepLine,
		batteryName:  *batteryName,
		diag:         *diag,
		batteryEvery: *batteryEvery,
		modalTimeout: *modalTimeout,
		printTemp:    *printTemp,
	})
	if errors.Is(err, device.ErrRestartRequested) {
		log.Printf("restarting for new emissivity")
		os.Exit(exitRestart)
	}
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

type runConfig struct {
	poll         time.Duration
	broker       string
	dbPath       string
	httpAddr     string
	i2cBus       string
	sensorAddr   uint16
	displayW     int
	displayH     int
	beepChip     string
	beepLine     int
	batteryName  string
	diag         time.Duration
	batteryEvery time.Duration
	modalTimeout time.Duration
	printTemp    bool
}

func run(rc runConfig) error {
	// Initialize the IR sensor
	src, err := sensor.NewMLX90614(rc.i2cBus, rc.sensorAddr)
	if err != nil {
		return fmt.Errorf("init sensor: %w", err)
	}
	defer src.Close()

	// Print temperature mode
	if rc.printTemp {
		raw, err := src.ReadRaw()
		if err != nil {
			return fmt.Errorf("read sensor: %w", err)
		}
		fmt.Printf("%.2f°C\n", raw/100.0)
		return nil
	}

	// Initialize the display and touch controller
	surface, err := display.NewSSD1306(rc.i2cBus, rc.displayW, rc.displayH)
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer surface.Close()

	touchSrc, err := touch.NewFT6336(rc.i2cBus, touch.DefaultI2CAddr)
	if err != nil {
		return fmt.Errorf("init touch: %w", err)
	}
	defer touchSrc.Close()

	// Initialize the piezo
	beep, err := beeper.NewRealBeeper(rc.beepChip, rc.beepLine)
	if err != nil {
		return fmt.Errorf("init beeper: %w", err)
	}
	defer beep.Close()

	// Battery is optional; a bench unit may run on wall power.
	var bat battery.Source
	if rc.batteryName != "" {
		b, err := battery.NewSysfsSource(rc.batteryName)
		if err != nil {
			log.Printf("battery unavailable: %v", err)
		} else {
			bat = b
			defer b.Close()
		}
	}

	// Initialize MQTT; connects in the background, buffering until up.
	publisher := telemetry.NewRealPublisher(rc.broker)
	defer publisher.Close()

	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:      rc.poll.Milliseconds(),
		DiagMs:      rc.diag.Milliseconds(),
		BatteryMs:   rc.batteryEvery.Milliseconds(),
		Broker:      rc.broker,
		HTTPAddr:    rc.httpAddr,
		DBPath:      rc.dbPath,
		I2CBus:      rc.i2cBus,
		ModalTimeMs: rc.modalTimeout.Milliseconds(),
	})

	// Start HTTP status server
	if rc.httpAddr != "" {
		srv := web.New(rc.httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", rc.httpAddr)
	}

	log.Printf("started: poll=%v broker=%s db=%s diag=%v", rc.poll, rc.broker, rc.dbPath, rc.diag)

	ticker := time.NewTicker(rc.poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	dev := device.New(device.Config{
		Sensor:          src,
		Touch:           touchSrc,
		Surface:         surface,
		Beeper:          beep,
		Battery:         bat,
		Publisher:       publisher,
		OpenStore:       settings.SQLiteOpener(rc.dbPath),
		Tracker:         tracker,
		MQTTStatus:      publisher,
		DiagInterval:    rc.diag,
		BatteryInterval: rc.batteryEvery,
		ModalTimeout:    rc.modalTimeout,
	})

	return dev.Run(ticker.C, sigCh)
}

// applyUnsetFlags copies file-config values into flags the operator did
// not pass on the command line. set records which flag names were passed.
func applyUnsetFlags(cfg config.Config, set map[string]bool, strs map[string]*string, ints map[string]*int, durs map[string]*time.Duration) {
	fileStr := map[string]string{
		"broker":    cfg.Broker,
		"db":        cfg.DBPath,
		"http":      cfg.HTTPAddr,
		"i2c":       cfg.I2CBus,
		"battery":   cfg.BatteryName,
		"beep-chip": cfg.BeeperChip,
	}
	fileInt := map[string]int{
		"sensor-addr": cfg.SensorAddr,
		"display-w":   cfg.DisplayWidth,
		"display-h":   cfg.DisplayHeight,
		"beep-line":   cfg.BeeperLine,
	}
	fileDur := map[string]time.Duration{
		"poll":             cfg.Poll.Duration,
		"diag":             cfg.DiagInterval.Duration,
		"battery-interval": cfg.BatteryInterval.Duration,
		"modal-timeout":    cfg.ModalTimeout.Duration,
	}

	for name, p := range strs {
		if !set[name] {
			*p = fileStr[name]
		}
	}
	for name, p := range ints {
		if !set[name] {
			*p = fileInt[name]
		}
	}
	for name, p := range durs {
		if !set[name] {
			*p = fileDur[name]
		}
	}
}
