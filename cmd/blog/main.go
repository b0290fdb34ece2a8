package main

import (
	"flag"
	"log"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sai-shivani-9/blogging-platform/internal/comment"
	"github.com/sai-shivani-9/blogging-platform/internal/config"
	"github.com/sai-shivani-9/blogging-platform/internal/notify"
	"github.com/sai-shivani-9/blogging-platform/internal/platform"
	"github.com/sai-shivani-9/blogging-platform/internal/post"
	"github.com/sai-shivani-9/blogging-platform/internal/seed"
	"github.com/sai-shivani-9/blogging-platform/internal/session"
	"github.com/sai-shivani-9/blogging-platform/internal/storage/memory"
	"github.com/sai-shivani-9/blogging-platform/internal/storage/sqlite"
	"github.com/sai-shivani-9/blogging-platform/internal/user"
	"github.com/sai-shivani-9/blogging-platform/internal/view"
)

// The demo binary stands in for a host view layer: it wires a backend, seeds
// the demo dataset, subscribes to store-change events and walks a scripted
// session through the whole operation surface.
func main() {
	storageType := flag.String("storage", "memory", "storage backend: memory or sqlite")
	flag.Parse()

	config.LoadEnv()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	seedData := config.GetEnvDefault("SEED_DEMO_DATA", "true") != "false"

	var userStore user.UserStorage
	var postStore post.PostStorage
	var commentStore comment.CommentStorage

	switch *storageType {
	case "memory":
		logger.Info("using in-memory storage")
		users := memory.NewUserMemoryStorage()
		posts := memory.NewPostMemoryStorage()
		if seedData {
			users.Load(seed.Users())
			posts.Load(seed.Posts())
		}
		userStore = users
		postStore = posts
		commentStore = memory.NewCommentMemoryStorage(posts)

	case "sqlite":
		logger.Info("using in-memory sqlite storage")
		if err := sqlite.InitDB(); err != nil {
			logger.Fatal("failed to init sqlite", zap.Error(err))
		}
		defer sqlite.CloseDB()
		if seedData {
			if err := sqlite.Load(seed.Users(), seed.Posts()); err != nil {
				logger.Fatal("failed to seed sqlite", zap.Error(err))
			}
		}
		userStore = sqlite.NewUserSqliteStorage()
		postStore = sqlite.NewPostSqliteStorage()
		commentStore = sqlite.NewCommentSqliteStorage()

	default:
		logger.Fatal("unknown storage type", zap.String("storage", *storageType))
	}

	hub := notify.NewHub()
	events, unsubscribe := hub.Subscribe()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for e := range events {
			logger.Info("store changed",
				zap.String("kind", string(e.Kind)),
				zap.String("post", e.PostID),
				zap.String("user", e.UserID))
		}
	}()

	app := platform.New(userStore, postStore, commentStore, hub, logger)
	app.SetCategories(seed.Categories())

	walkthrough(app, logger)

	unsubscribe()
	wg.Wait()
}

// walkthrough drives one complete session: anonymous redirect, registration,
// login, post CRUD, a like toggle by a second user, comments, dashboard and
// the admin gate.
func walkthrough(app *platform.Platform, logger *zap.Logger) {
	// Anonymous users cannot reach the dashboard.
	resolved := app.Navigate(session.Target{Page: session.PageDashboard})
	logger.Info("anonymous navigation", zap.String("landed on", string(resolved.Page)))

	if err := app.Register("Carol", "carol@example.com", "pw1"); err != nil {
		logger.Fatal("registration failed", zap.Error(err))
	}
	if err := app.Login("Carol", "pw1"); err != nil {
		logger.Fatal("login failed", zap.Error(err))
	}

	// Simulated fetch latency behind the dashboard's loading indicator.
	spinner := view.StartLoading(loadingDelay(), func() {
		logger.Info("dashboard finished loading")
	})
	defer spinner.Stop()

	created, err := app.CreatePost(post.Input{
		Title:          "Hello",
		Content:        "A first post from the demo walkthrough.",
		ContentSnippet: "A first post...",
		ImageURL:       "https://placehold.co/600x400",
		Category:       "Technology",
	})
	if err != nil {
		logger.Fatal("create post failed", zap.Error(err))
	}

	// A second account likes and comments on Carol's post.
	app.Logout()
	if err := app.Register("Dave", "dave@example.com", "pw2"); err != nil {
		logger.Fatal("registration failed", zap.Error(err))
	}
	if err := app.Login("Dave", "pw2"); err != nil {
		logger.Fatal("login failed", zap.Error(err))
	}
	liked, count, err := app.ToggleLike(created.ID)
	if err != nil {
		logger.Fatal("like failed", zap.Error(err))
	}
	logger.Info("post liked", zap.Bool("liked", liked), zap.Int("likes", count))
	if _, err := app.AddComment(created.ID, "Nice first post!"); err != nil {
		logger.Fatal("comment failed", zap.Error(err))
	}

	// Non-admins are redirected away from the admin dashboard.
	resolved = app.Navigate(session.Target{Page: session.PageAdmin})
	logger.Info("admin navigation as non-admin", zap.String("landed on", string(resolved.Page)))

	// Back to Carol for the dashboard aggregates and cleanup.
	app.Logout()
	if err := app.Login("Carol", "pw1"); err != nil {
		logger.Fatal("login failed", zap.Error(err))
	}
	dash, err := app.Dashboard()
	if err != nil {
		logger.Fatal("dashboard failed", zap.Error(err))
	}
	logger.Info("dashboard",
		zap.Int("my posts", len(dash.MyPosts)),
		zap.Int("liked posts", len(dash.LikedPosts)),
		zap.Int("my comments", len(dash.MyComments)))

	if err := app.DeletePost(created.ID); err != nil {
		logger.Fatal("delete failed", zap.Error(err))
	}

	posts, err := app.FilteredPosts()
	if err != nil {
		logger.Fatal("list failed", zap.Error(err))
	}
	logger.Info("walkthrough done", zap.Int("posts remaining", len(posts)))
	app.Logout()
}

func newLogger() (*zap.Logger, error) {
	if config.GetEnvDefault("LOG_DEBUG", "false") == "true" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadingDelay() time.Duration {
	ms, err := strconv.Atoi(config.GetEnvDefault("LOADING_DELAY_MS", "800"))
	if err != nil || ms < 0 {
		ms = 800
	}
	return time.Duration(ms) * time.Millisecond
}
