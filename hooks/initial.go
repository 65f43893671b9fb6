// Package hooks wires the node together: a staged init chain that composes
// configuration, identity and logging, followed by the run hook that owns
// the HTTP server and the chain clock.
package hooks

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/vantrou/memnode/internal/core/corestate"
	"github.com/vantrou/memnode/internal/core/nodestate"
	"github.com/vantrou/memnode/internal/core/run_manager"
	"github.com/vantrou/memnode/internal/core/settings"
	"github.com/vantrou/memnode/internal/engine/app"
	"github.com/vantrou/memnode/internal/engine/config"
	"github.com/vantrou/memnode/internal/engine/logs"
	"gopkg.in/ini.v1"
)

var Compositor *config.Compositor = config.NewCompositor()

func Init0Hook(cs *corestate.CoreState, x *app.AppX) {
	x.Config = Compositor
	x.Log.SetOutput(os.Stdout)
	x.Log.SetPrefix(logs.SetBrightBlack(fmt.Sprintf("(%s) ", cs.Stage)))
	x.Log.SetFlags(log.Ldate | log.Ltime)
}

// First stage: pre-init
func Init1Hook(cs *corestate.CoreState, x *app.AppX) {
	*cs = *corestate.NewCorestate(&corestate.CoreState{
		UUID32DirName:      "uuid",
		NodeBinName:        filepath.Base(os.Args[0]),
		NodeVersion:        config.NodeVersion,
		MetaDir:            config.MetaDir,
		Stage:              corestate.StagePreInit,
		StartTimestampUnix: time.Now().Unix(),
	})
}

func Init2Hook(cs *corestate.CoreState, x *app.AppX) {
	x.Log.SetPrefix(logs.SetBlue(fmt.Sprintf("(%s) ", cs.Stage)))

	if err := x.Config.LoadEnv(); err != nil {
		x.Log.Fatalf("env load error: %s", err)
	}
	cs.NodePath = *x.Config.Env.NodePath

	if cfgPath := x.Config.CMDLine.ConfigPath; cfgPath != "" {
		x.Config.Env.ConfigPath = &cfgPath
	}
	if err := x.Config.LoadConf(*x.Config.Env.ConfigPath); err != nil {
		x.Log.Fatalf("conf load error: %s", err)
	}
	if x.Config.CMDLine.Debug {
		debug := string(settings.LogLevelDebug)
		x.Config.Conf.Log.Level = &debug
	}
}

func Init3Hook(cs *corestate.CoreState, x *app.AppX) {
	uuid32, err := corestate.GetNodeUUID(filepath.Join(cs.MetaDir, cs.UUID32DirName))
	if errors.Is(err, fs.ErrNotExist) {
		if err := corestate.SetNodeUUID(filepath.Join(cs.NodePath, cs.MetaDir, cs.UUID32DirName)); err != nil {
			x.Log.Fatalf("Cannot generate node uuid: %s", err.Error())
		}
		uuid32, err = corestate.GetNodeUUID(filepath.Join(cs.MetaDir, cs.UUID32DirName))
		if err != nil {
			x.Log.Fatalf("Unexpected failure: %s", err.Error())
		}
	}
	if err != nil {
		x.Log.Fatalf("uuid load error: %s", err)
	}
	cs.UUID32 = uuid32
	x.Log.Printf("Node uuid is %s", cs.UUID32)
}

// post-init stage: claim the runtime directory and drop the run.lock
// describing this instance.
func Init4Hook(cs *corestate.CoreState, x *app.AppX) {
	cs.Stage = corestate.StagePostInit
	x.Log.SetPrefix(logs.SetYellow(fmt.Sprintf("(%s) ", cs.Stage)))

	runDir, err := run_manager.Create(cs.UUID32)
	if err != nil {
		x.Log.Fatalf("Unexpected failure: %s", err.Error())
	}
	cs.RunDir = runDir

	if err := run_manager.Set("run.lock"); err != nil {
		_ = run_manager.Clean()
		x.Log.Fatalf("Unexpected failure: %s", err.Error())
	}
	lockPath, err := run_manager.Get("run.lock")
	if err != nil {
		_ = run_manager.Clean()
		x.Log.Fatalf("Unexpected failure: %s", err.Error())
	}
	lockFile := ini.Empty()
	secRun, err := lockFile.NewSection("runtime")
	if err != nil {
		_ = run_manager.Clean()
		x.Log.Fatalf("Unexpected failure: %s", err.Error())
	}
	secRun.Key("pid").SetValue(fmt.Sprintf("%d", os.Getpid()))
	secRun.Key("version").SetValue(cs.NodeVersion)
	secRun.Key("uuid").SetValue(cs.UUID32)
	secRun.Key("timestamp").SetValue(time.Unix(cs.StartTimestampUnix, 0).Format("2006-01-02/15:04:05 MST"))
	secRun.Key("timestamp-unix").SetValue(fmt.Sprintf("%d", cs.StartTimestampUnix))

	if err := lockFile.SaveTo(lockPath); err != nil {
		_ = run_manager.Clean()
		x.Log.Fatalf("Unexpected failure: %s", err.Error())
	}
}

func Init5Hook(cs *corestate.CoreState, x *app.AppX) {
	if !slices.Contains(*x.Config.Conf.DisableWarnings, "--WNonStdTmpDir") && os.TempDir() != "/tmp" {
		x.Log.Printf("%s: %s", logs.PrintWarn(), "Non-standard value specified for temporary directory")
	}
	if strings.Contains(*x.Config.Conf.Log.OutPath, `%tmp%`) {
		replaced := strings.ReplaceAll(*x.Config.Conf.Log.OutPath, "%tmp%", filepath.Clean(run_manager.RuntimeDir()))
		x.Config.Conf.Log.OutPath = &replaced
	}
}

// Final stage: bring up the logging subsystem and the shared node state.
func Init6Hook(cs *corestate.CoreState, x *app.AppX) {
	cs.Stage = corestate.StageReady
	x.Log.SetPrefix(logs.SetGreen(fmt.Sprintf("(%s) ", cs.Stage)))

	newSlog, obs, err := logs.SetupLogger(x.Config.Conf.Log)
	if err != nil {
		_ = run_manager.Clean()
		x.Log.Fatalf("Unexpected failure: %s", err.Error())
	}
	x.SLog = newSlog
	x.Obs = obs

	d := x.Config.Conf.Diagnostics
	x.State = nodestate.New(nodestate.Options{
		ShowCalls:       parseOrWarn(x, "show_calls", *d.ShowCalls, settings.ParseShowCalls, settings.ShowCallsNone),
		ShowStorageLogs: parseOrWarn(x, "show_storage_logs", *d.ShowStorageLogs, settings.ParseShowStorageLogs, settings.ShowStorageLogsNone),
		ShowVMDetails:   parseOrWarn(x, "show_vm_details", *d.ShowVMDetails, settings.ParseShowVMDetails, settings.ShowVMDetailsNone),
		ShowGasDetails:  parseOrWarn(x, "show_gas_details", *d.ShowGasDetails, settings.ParseShowGasDetails, settings.ShowGasDetailsNone),
		ResolveHashes:   *d.ResolveHashes,
		StartTimestamp:  *x.Config.Conf.Chain.StartTimestamp,
		Observability:   obs,
	})
	x.SLog.Debug("node state initialized", slog.String("uuid", cs.UUID32), slog.String("version", cs.NodeVersion))
}

// parseOrWarn falls back to a default when a boot-time diagnostics value is
// unrecognized. Unlike the RPC surface, config mistakes are worth a warning.
func parseOrWarn[T fmt.Stringer](x *app.AppX, key, raw string, parse func(string) (T, bool), def T) T {
	v, ok := parse(raw)
	if !ok {
		x.Log.Printf("%s: unknown %s value %q, using %q", logs.PrintWarn(), key, raw, def.String())
		return def
	}
	return v
}
