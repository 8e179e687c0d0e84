package cmd

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/minecraft1024a/mofox-market/internal/catalog"
	"github.com/minecraft1024a/mofox-market/internal/config"
	"github.com/minecraft1024a/mofox-market/internal/i18n"
	"github.com/minecraft1024a/mofox-market/internal/logger"
	"github.com/minecraft1024a/mofox-market/internal/progress"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session bundles what a command needs to work with the catalogue
type session struct {
	logger  *zap.Logger
	store   *catalog.Store
	rng     *rand.Rand
	spinner *progress.Spinner // nil when stderr is not a terminal
}

// newSession builds the logger, the catalogue store and the random source
// for one command invocation
func newSession(cmd *cobra.Command) *session {
	cfg := config.Get()

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := logger.NewOrNop(logger.Config{Level: level})

	s := &session{logger: log}

	n := uint64(time.Now().UnixNano())
	if cmd.Flags().Changed("seed") {
		n = seed
	}
	s.rng = rand.New(rand.NewPCG(n, n>>1|1))

	// Progress goes to stderr only when a person is watching; debug logs
	// would interleave with the spinner line
	if isatty.IsTerminal(os.Stderr.Fd()) && !verbose {
		s.spinner = progress.NewSpinner(os.Stderr, phaseMessage(catalog.PhaseIdle))
	}

	var source catalog.Source = catalog.NewClient(cfg.ClientConfig(), log.Named("client"))
	if cfg.Source.File != "" {
		source = catalog.FileSource{Path: cfg.Source.File}
	}

	s.store = catalog.NewStore(source,
		catalog.WithScorer(catalog.NewSeededScorer(n)),
		catalog.WithLogger(log.Named("store")),
		catalog.WithPhaseHook(func(p catalog.Phase) {
			if s.spinner != nil {
				s.spinner.SetMessage(phaseMessage(p))
			}
		}),
	)

	return s
}

// load loads the catalogue and converts a failure into a localized error
func (s *session) load(ctx context.Context) error {
	defer func() { _ = s.logger.Sync() }()

	if s.spinner != nil {
		s.spinner.Start()
	}
	err := s.store.Load(ctx)
	if s.spinner != nil {
		s.spinner.Stop(err == nil)
	}

	if err != nil {
		return errors.New(i18n.T("LoadFailed", map[string]any{"Error": s.store.Err()}))
	}
	return nil
}

// phaseMessage returns the localized progress line of a load phase
func phaseMessage(p catalog.Phase) string {
	msg := i18n.T("status."+p.String(), nil)
	if msg == "status."+p.String() {
		return p.Message()
	}
	return msg
}
