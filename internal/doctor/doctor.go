package doctor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/raphi011/rpc/internal/log"
	"github.com/raphi011/rpc/internal/manifest"
	"github.com/raphi011/rpc/internal/version"
)

// NodeDownloadURL is suggested when Node.js is missing or outdated.
const NodeDownloadURL = "https://nodejs.org/"

// Check names
const (
	CheckInstall = "install"
	CheckVersion = "version"
	CheckRuntime = "runtime"
)

// Options configures a doctor run.
type Options struct {
	PackageName    string
	MinNodeVersion string
	IssuesURL      string

	// LocalVersion is the build-time version. When empty or "dev" the
	// version is read from a package.json near Executable.
	LocalVersion string
	Executable   string

	// Timeout bounds each lookup; zero means no limit.
	Timeout time.Duration

	// Runner defaults to ExecRunner.
	Runner Runner

	// OnCheck is called before each check with a progress message.
	OnCheck func(msg string)
}

func (o Options) withDefaults() Options {
	if o.Runner == nil {
		o.Runner = ExecRunner{}
	}
	if o.OnCheck == nil {
		o.OnCheck = func(string) {}
	}
	return o
}

// Run performs all checks in order. It never fails; problems are part of
// the report.
func Run(ctx context.Context, opts Options) Report {
	opts = opts.withDefaults()

	opts.OnCheck("Checking installation status...")
	install := checkInstall(ctx, opts)

	opts.OnCheck("Checking for updates...")
	info, ver := checkVersion(ctx, opts)

	opts.OnCheck("Checking Node.js environment...")
	runtime := checkRuntime(ctx, opts)

	return Report{
		Results:   []Result{install, ver, runtime},
		Version:   info,
		IssuesURL: opts.IssuesURL,
	}
}

func checkInstall(ctx context.Context, opts Options) Result {
	res := Result{Name: CheckInstall}

	out, err := lookup(ctx, opts.Runner, opts.Timeout, "npm", "list", "-g", opts.PackageName)
	if err != nil || strings.Contains(out, "empty") {
		log.FromContext(ctx).Debug("global install lookup", "package", opts.PackageName, "err", err)
		res.Status = StatusWarn
		res.Message = fmt.Sprintf("%s does not appear to be installed globally. Some features may not work as expected.", opts.PackageName)
		res.Tip = "Install globally using npm install -g " + opts.PackageName
		return res
	}

	res.Status = StatusOK
	res.Message = fmt.Sprintf("%s is properly installed globally.", opts.PackageName)
	return res
}

func checkVersion(ctx context.Context, opts Options) (VersionInfo, Result) {
	res := Result{Name: CheckVersion}
	var info VersionInfo

	info.Local = localVersion(ctx, opts)

	out, err := lookup(ctx, opts.Runner, opts.Timeout, "npm", "show", opts.PackageName, "version")
	if err == nil {
		info.Latest = strings.TrimSpace(out)
	} else {
		log.FromContext(ctx).Debug("latest version lookup", "package", opts.PackageName, "err", err)
	}

	switch {
	case info.Local == "":
		res.Status = StatusFail
		res.Message = "Could not determine local version."
	case info.Latest == "":
		res.Status = StatusUnknown
		res.Message = "Could not check for updates. You may be offline."
	case version.Compare(info.Latest, info.Local) > 0:
		info.UpdateAvailable = true
		res.Status = StatusWarn
		res.Message = fmt.Sprintf("Update available: %s → %s", info.Local, info.Latest)
		res.Tip = fmt.Sprintf("Update using npm install -g %s@latest", opts.PackageName)
	default:
		res.Status = StatusOK
		res.Message = fmt.Sprintf("You are running the latest version (%s).", info.Local)
	}
	return info, res
}

// localVersion prefers the build-time version and falls back to the
// package.json shipped alongside the executable.
func localVersion(ctx context.Context, opts Options) string {
	if opts.LocalVersion != "" && opts.LocalVersion != "dev" {
		return opts.LocalVersion
	}
	if opts.Executable == "" {
		return ""
	}

	path, err := manifest.FindUp(filepath.Dir(opts.Executable), manifest.DefaultFindDepth)
	if err != nil {
		log.FromContext(ctx).Debug("own package.json not found", "err", err)
		return ""
	}
	v, err := manifest.ReadVersion(path)
	if err != nil {
		log.FromContext(ctx).Debug("read own version", "path", path, "err", err)
		return ""
	}
	return v
}

func checkRuntime(ctx context.Context, opts Options) Result {
	res := Result{Name: CheckRuntime}

	out, err := lookup(ctx, opts.Runner, opts.Timeout, "node", "--version")
	node := strings.TrimSpace(out)
	if err != nil || node == "" {
		log.FromContext(ctx).Debug("node version lookup", "err", err)
		res.Status = StatusUnknown
		res.Message = "Could not determine the Node.js version."
		res.Tip = "Install Node.js from " + NodeDownloadURL
		return res
	}

	if version.AtLeast(node, opts.MinNodeVersion) {
		res.Status = StatusOK
		res.Message = fmt.Sprintf("Node.js %s (meets minimum requirement of %s)", node, opts.MinNodeVersion)
		return res
	}

	res.Status = StatusWarn
	res.Message = fmt.Sprintf("Node.js %s (below minimum requirement of %s)", node, opts.MinNodeVersion)
	res.Tip = "Update Node.js from " + NodeDownloadURL
	return res
}
