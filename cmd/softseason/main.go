package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/emmavds/softseason/internal/cli"
	"github.com/emmavds/softseason/internal/db"
	"github.com/emmavds/softseason/internal/intelligence"
	"github.com/emmavds/softseason/internal/llm"
	"github.com/emmavds/softseason/internal/quotes"
	"github.com/emmavds/softseason/internal/repository"
	"github.com/emmavds/softseason/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.softseason/softseason.db
	dbPath := os.Getenv("SOFTSEASON_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".softseason", "softseason.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	questionRepo := repository.NewSQLiteQuestionRepo(database)
	answerRepo := repository.NewSQLiteAnswerRepo(database)
	taskRepo := repository.NewSQLiteDailyTaskRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the LLM client
	llmCfg := llm.LoadConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}
	llmClient := llm.NewOllamaClient(llmCfg, llmObserver)

	questionGen := intelligence.NewQuestionGenerator(llmClient)
	planGen := intelligence.NewPlanGenerator(llmClient)
	quoteSource := quotes.NewHTTPSource("")

	// Wire services; question and plan flows share one lock table so
	// concurrent work on a session is serialized.
	locks := service.NewSessionLocks()
	sessionSvc := service.NewSessionService(sessionRepo)
	planSvc := service.NewPlanService(sessionRepo, questionRepo, answerRepo, taskRepo,
		planGen, quoteSource, uow, locks, useCaseObserver)
	questionSvc := service.NewQuestionService(sessionRepo, questionRepo, answerRepo,
		questionGen, planSvc, locks, useCaseObserver)

	app := &cli.App{
		Sessions:  sessionSvc,
		Questions: questionSvc,
		Plans:     planSvc,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
