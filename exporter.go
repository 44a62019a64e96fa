package obsidianpdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path"

	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/assets"
	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/fileutil"
	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/inline"
	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/render"
	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/vault"
)

// Compile-time interface implementation checks.
var (
	_ render.Renderer = (*render.MarkdownRenderer)(nil)
	_ inline.Fetcher  = (*inline.HTTPFetcher)(nil)
	_ vault.Store     = (*vault.FS)(nil)
	_ assets.Loader   = (*assets.EmbeddedLoader)(nil)
	_ assets.Loader   = (*assets.DirLoader)(nil)
)

// artifactName is the file written inside the export folder.
const artifactName = "index.html"

// Exporter turns one vault note at a time into a self-contained printable
// HTML artifact. Create with NewExporter, run exports with Export.
// An Exporter is safe for sequential reuse; each Export owns its tree.
type Exporter struct {
	cfg      exporterConfig
	store    vault.Store
	loader   assets.Loader
	renderer render.Renderer
	fetcher  inline.Fetcher
	logger   *slog.Logger
	shell    *template.Template
}

// shellData feeds the HTML shell template.
type shellData struct {
	Title        string
	Style        template.CSS
	Body         template.HTML
	PrintDelayMS int // 0 omits the print trigger
}

// NewExporter creates an Exporter over the given vault store.
// Use options to customize behavior (e.g., WithStyle, WithTimeout,
// WithoutRemoteResources). Returns an error if asset loading or template
// parsing fails.
func NewExporter(store vault.Store, opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg: exporterConfig{
			timeout:      DefaultTimeout,
			concurrency:  DefaultConcurrency,
			printDelayMS: DefaultPrintDelayMS,
			printTrigger: true,
			remote:       true,
		},
		store:    store,
		loader:   assets.NewEmbeddedLoader(),
		renderer: render.NewMarkdownRenderer(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.cfg.assetDir != "" {
		loader, err := assets.NewDirLoader(e.cfg.assetDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
		}
		e.loader = loader
	}

	if err := e.resolveStyle(); err != nil {
		return nil, err
	}

	shellContent, err := e.loader.LoadTemplate(assets.ShellTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading shell template: %w", err)
	}
	shell, err := template.New(assets.ShellTemplateName).Parse(shellContent)
	if err != nil {
		return nil, fmt.Errorf("parsing shell template: %w", err)
	}
	e.shell = shell

	if e.fetcher == nil && e.cfg.remote {
		e.fetcher = inline.NewHTTPFetcher()
	}
	if !e.cfg.remote {
		e.fetcher = nil
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}

	return e, nil
}

// Export runs the full pipeline for one note and writes the artifact into a
// uniquely named export folder in the vault.
//
// Failures of individual resources never abort the export; they surface as
// visual markers inside the artifact. Rendering, folder creation, and the
// final write are fatal. Internal panics are recovered and reported as
// errors.
func (e *Exporter) Export(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.NotePath == "" {
		return nil, ErrEmptyNotePath
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && e.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.timeout)
		defer cancel()
	}

	source := input.Markdown
	if source == "" {
		data, readErr := e.store.ReadBytes(input.NotePath)
		if readErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoteRead, readErr)
		}
		source = string(data)
	}

	fragment, meta, err := e.renderer.Render(ctx, source, input.NotePath)
	if err != nil {
		return nil, fmt.Errorf("rendering note: %w", err)
	}

	tree, isFragment, err := inline.ParseTree(fragment)
	if err != nil {
		return nil, fmt.Errorf("parsing rendered content: %w", err)
	}

	inliner := &inline.Inliner{
		Store:       e.store,
		Fetcher:     e.fetcher,
		Concurrency: e.cfg.concurrency,
		Logger:      e.logger,
	}
	stats := inliner.Inline(ctx, tree, input.NotePath)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	body, err := inline.RenderTree(tree, isFragment)
	if err != nil {
		return nil, fmt.Errorf("serializing content: %w", err)
	}

	artifact, err := e.assembleShell(meta, input.NotePath, body)
	if err != nil {
		return nil, err
	}

	dir, err := e.createExportFolder(input.NotePath)
	if err != nil {
		return nil, err
	}

	indexPath := path.Join(dir, artifactName)
	if err := e.store.CreateBinaryFile(indexPath, artifact); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactWrite, err)
	}

	e.logger.Info("export complete",
		"note", input.NotePath,
		"dir", dir,
		"inlined", stats.Inlined,
		"failed", stats.Failed,
		"placeholders", stats.Placeholders,
	)

	return &Result{
		Dir:       dir,
		IndexPath: indexPath,
		HTML:      artifact,
		Stats:     stats,
	}, nil
}

// assembleShell wraps the processed body in the HTML document shell with
// style, title, and the print trigger.
func (e *Exporter) assembleShell(meta render.DocMeta, notePath, body string) ([]byte, error) {
	title := meta.Title
	if title == "" {
		title = fileutil.BaseNameNoExt(notePath)
	}

	delay := 0
	if e.cfg.printTrigger {
		delay = e.cfg.printDelayMS
	}

	var buf bytes.Buffer
	data := shellData{
		Title:        title,
		Style:        template.CSS(e.cfg.resolvedStyle + pageBreaksCSS()),
		Body:         template.HTML(body), // #nosec G203 -- body is our own sanitized render output
		PrintDelayMS: delay,
	}
	if err := e.shell.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("assembling document shell: %w", err)
	}
	return buf.Bytes(), nil
}

// createExportFolder picks the unique "{sanitized}-Export[-n]" folder name
// and creates it in the vault.
func (e *Exporter) createExportFolder(notePath string) (string, error) {
	base := fileutil.ExportDirName(fileutil.BaseNameNoExt(notePath))
	dir, err := fileutil.UniqueDir(base, e.store.Exists)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExportFolder, err)
	}
	if err := e.store.CreateFolder(dir); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExportFolder, err)
	}
	return dir, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS.
// Called during NewExporter after options are applied.
func (e *Exporter) resolveStyle() error {
	input := e.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		e.cfg.resolvedStyle = string(content)
		return nil
	}

	// Raw CSS content? (contains {)
	if fileutil.IsCSS(input) {
		e.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> asset loader
	css, err := e.loader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrStyleNotFound, input)
	}
	e.cfg.resolvedStyle = css
	return nil
}
