package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/atomicstack/devmenu/internal/app"
	"github.com/atomicstack/devmenu/internal/property"
	"github.com/atomicstack/devmenu/internal/storage"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// EnvPrefix prefixes every environment override, e.g. DEVMENU_ROWS.
const EnvPrefix = "DEVMENU"

const (
	keyConfig         = "config"
	keyWidth          = "width"
	keyRows           = "rows"
	keyPolicy         = "policy"
	keyLoadOnStart    = "load-on-start"
	keyStoreOnCommit  = "store-on-commit"
	keyNotifyOnChange = "notify-on-change"
	keyTick           = "tick"
	keyRates          = "rates"
	keyStorage        = "storage"
	keyStoragePath    = "storage-path"
	keyFooter         = "footer"
	keyBlink          = "blink"
	keyTrace          = "trace"
	keyLogFile        = "log-file"
)

// BindFlags registers every configuration flag on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "path to a YAML config file")
	fs.Int(keyWidth, 20, "display width in columns")
	fs.Int(keyRows, 3, "visible menu items below the title line")
	fs.String(keyPolicy, "min", "out-of-range policy for stored values: min, max, mid or any")
	fs.Bool(keyLoadOnStart, true, "load stored settings when the menu starts")
	fs.Bool(keyStoreOnCommit, false, "store a setting as soon as its edit is committed")
	fs.Bool(keyNotifyOnChange, false, "notify the device after every change while editing")
	fs.Duration(keyTick, 250*time.Millisecond, "interval of the emulated inputs")
	fs.UintSlice(keyRates, []uint{1, 0, 3}, "pulses per tick on each input channel")
	fs.String(keyStorage, string(storage.KindMemory), "storage backend: memory, diskv or sqlite")
	fs.String(keyStoragePath, "~/.devmenu", "directory for the diskv and sqlite backends")
	fs.Bool(keyFooter, true, "show the key help footer")
	fs.Bool(keyBlink, true, "blink the value being edited")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	fs.String(keyLogFile, "", "path to the log file")
}

// Resolve merges the flags the command line parsed into fs, DEVMENU_* environment variables, the optional
// config file and defaults, in that order of precedence.
func Resolve(fs *pflag.FlagSet, args []string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	policy, err := property.ParsePolicy(v.GetString(keyPolicy))
	if err != nil {
		return Config{}, err
	}
	kind, err := storage.ParseKind(v.GetString(keyStorage))
	if err != nil {
		return Config{}, err
	}
	rates, err := parseRates(v.GetStringSlice(keyRates))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:          v.GetInt(keyWidth),
			Rows:           v.GetInt(keyRows),
			Policy:         policy,
			LoadOnStart:    v.GetBool(keyLoadOnStart),
			StoreOnCommit:  v.GetBool(keyStoreOnCommit),
			NotifyOnChange: v.GetBool(keyNotifyOnChange),
			Storage:        kind,
			StoragePath:    v.GetString(keyStoragePath),
			Tick:           v.GetDuration(keyTick),
			Rates:          rates,
			ShowFooter:     v.GetBool(keyFooter),
			Blink:          v.GetBool(keyBlink),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
		},
		Args: append([]string(nil), args...),
	}
	cfg.Flags = map[string]string{
		keyWidth:          strconv.Itoa(cfg.App.Width),
		keyRows:           strconv.Itoa(cfg.App.Rows),
		keyPolicy:         policy.String(),
		keyLoadOnStart:    strconv.FormatBool(cfg.App.LoadOnStart),
		keyStoreOnCommit:  strconv.FormatBool(cfg.App.StoreOnCommit),
		keyNotifyOnChange: strconv.FormatBool(cfg.App.NotifyOnChange),
		keyTick:           cfg.App.Tick.String(),
		keyStorage:        string(kind),
		keyStoragePath:    cfg.App.StoragePath,
		keyTrace:          strconv.FormatBool(cfg.Logging.Trace),
		keyLogFile:        cfg.Logging.FilePath,
	}
	return cfg, nil
}

// parseRates accepts both the flag's list and a comma separated string from
// the environment.
func parseRates(values []string) ([]uint32, error) {
	var rates []uint32
	for _, value := range values {
		for _, field := range strings.Split(strings.Trim(value, "[]"), ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid pulse rate %q: %w", field, err)
			}
			rates = append(rates, uint32(n))
		}
	}
	return rates, nil
}

// Validate checks the ranges the display and the input emulation can handle.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 8 || cfg.App.Width > 40 {
		errs = append(errs, fmt.Errorf("width must be between 8 and 40 (got %d)", cfg.App.Width))
	}
	if cfg.App.Rows < 1 || cfg.App.Rows > 8 {
		errs = append(errs, fmt.Errorf("rows must be between 1 and 8 (got %d)", cfg.App.Rows))
	}
	if cfg.App.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive (got %s)", cfg.App.Tick))
	}
	if cfg.App.Storage != storage.KindMemory && strings.TrimSpace(cfg.App.StoragePath) == "" {
		errs = append(errs, fmt.Errorf("storage %s needs a storage path", cfg.App.Storage))
	}
	return errors.Join(errs...)
}
