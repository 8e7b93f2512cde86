package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"

	"dwelloBack/internal/config"
	"dwelloBack/internal/handlers"
	"dwelloBack/internal/repositories"
	"dwelloBack/internal/services"
	"dwelloBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	db       *sql.DB
	tokens   *utils.Manager

	userRepo     *repositories.UserRepository
	homeRepo     *repositories.HomeRepository
	reminderRepo *repositories.ReminderRepository
	warrantyRepo *repositories.WarrantyRepository
	chatRepo     *repositories.ChatRepository
	messageRepo  *repositories.MessageRepository

	notifier *services.NotificationService

	userHandler        *handlers.UserHandler
	homeHandler        *handlers.HomeHandler
	connectionHandler  *handlers.ConnectionHandler
	invitationHandler  *handlers.InvitationHandler
	requestHandler     *handlers.ServiceRequestHandler
	quoteHandler       *handlers.QuoteHandler
	submissionHandler  *handlers.SubmissionHandler
	recordHandler      *handlers.RecordHandler
	warrantyHandler    *handlers.WarrantyHandler
	reminderHandler    *handlers.ReminderHandler
	chatHandler        *handlers.ChatHandler
	messageHandler     *handlers.MessageHandler
	deviceTokenHandler *handlers.DeviceTokenHandler

	wsManager *WebSocketManager
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	tokens, err := utils.NewManager(cfg.Auth.JWTSecret)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Repositories
	userRepo := &repositories.UserRepository{DB: db}
	homeRepo := &repositories.HomeRepository{DB: db}
	connectionRepo := &repositories.ConnectionRepository{DB: db}
	invitationRepo := &repositories.InvitationRepository{DB: db}
	requestRepo := &repositories.ServiceRequestRepository{DB: db}
	quoteRepo := &repositories.QuoteRepository{DB: db, RequestRepo: requestRepo}
	recordRepo := &repositories.ServiceRecordRepository{DB: db}
	submissionRepo := &repositories.ServiceSubmissionRepository{
		DB:             db,
		RecordRepo:     recordRepo,
		RequestRepo:    requestRepo,
		ConnectionRepo: connectionRepo,
	}
	attachmentRepo := &repositories.AttachmentRepository{DB: db}
	warrantyRepo := &repositories.WarrantyRepository{DB: db}
	reminderRepo := &repositories.ReminderRepository{DB: db}
	chatRepo := &repositories.ChatRepository{DB: db}
	messageRepo := &repositories.MessageRepository{DB: db}
	tokenRepo := &repositories.DeviceTokenRepository{DB: db}

	summaryCache := repositories.NewSummaryCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, 10*time.Minute)

	notifier := &services.NotificationService{
		Client:    newMessagingClient(cfg, errorLog),
		TokenRepo: tokenRepo,
		ErrorLog:  errorLog,
	}

	reviewWindow := time.Duration(cfg.Review.WindowDays) * 24 * time.Hour

	// Services
	userService := &services.UserService{UserRepo: userRepo, Tokens: tokens}
	homeService := &services.HomeService{HomeRepo: homeRepo}
	connectionService := &services.ConnectionService{
		ConnectionRepo: connectionRepo,
		HomeRepo:       homeRepo,
		Cache:          summaryCache,
	}
	invitationService := &services.InvitationService{
		InvitationRepo: invitationRepo,
		HomeRepo:       homeRepo,
		Notifier:       notifier,
	}
	requestService := &services.RequestLifecycleService{
		RequestRepo:    requestRepo,
		QuoteRepo:      quoteRepo,
		RecordRepo:     recordRepo,
		ConnectionRepo: connectionRepo,
		HomeRepo:       homeRepo,
		Notifier:       notifier,
	}
	quoteService := &services.QuoteService{
		QuoteRepo:   quoteRepo,
		RequestRepo: requestRepo,
		HomeRepo:    homeRepo,
		Notifier:    notifier,
	}
	submissionService := &services.SubmissionReviewService{
		SubmissionRepo: submissionRepo,
		ConnectionRepo: connectionRepo,
		HomeRepo:       homeRepo,
		Cache:          summaryCache,
		Notifier:       notifier,
		ReviewWindow:   reviewWindow,
	}
	recordService := &services.ServiceRecordService{
		RecordRepo:     recordRepo,
		ConnectionRepo: connectionRepo,
		HomeRepo:       homeRepo,
	}
	warrantyService := &services.WarrantyService{WarrantyRepo: warrantyRepo, HomeRepo: homeRepo}
	reminderService := &services.ReminderService{ReminderRepo: reminderRepo, HomeRepo: homeRepo}
	chatService := &services.ChatService{ChatRepo: chatRepo}
	messageService := &services.MessageService{
		MessageRepo: messageRepo,
		ChatRepo:    chatRepo,
		Notifier:    notifier,
	}

	return &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		cfg:      cfg,
		db:       db,
		tokens:   tokens,

		userRepo:     userRepo,
		homeRepo:     homeRepo,
		reminderRepo: reminderRepo,
		warrantyRepo: warrantyRepo,
		chatRepo:     chatRepo,
		messageRepo:  messageRepo,

		notifier: notifier,

		userHandler:        &handlers.UserHandler{Service: userService},
		homeHandler:        &handlers.HomeHandler{Service: homeService},
		connectionHandler:  &handlers.ConnectionHandler{Service: connectionService},
		invitationHandler:  &handlers.InvitationHandler{Service: invitationService},
		requestHandler:     &handlers.ServiceRequestHandler{Service: requestService},
		quoteHandler:       &handlers.QuoteHandler{Service: quoteService},
		submissionHandler:  &handlers.SubmissionHandler{Service: submissionService, Attachments: attachmentRepo},
		recordHandler:      &handlers.RecordHandler{Service: recordService},
		warrantyHandler:    &handlers.WarrantyHandler{Service: warrantyService},
		reminderHandler:    &handlers.ReminderHandler{Service: reminderService},
		chatHandler:        &handlers.ChatHandler{Service: chatService},
		messageHandler:     &handlers.MessageHandler{Service: messageService},
		deviceTokenHandler: &handlers.DeviceTokenHandler{Service: notifier},
	}
}

// newMessagingClient returns nil when Firebase is not configured; the
// notification service treats a nil client as push disabled.
func newMessagingClient(cfg config.Config, errorLog *log.Logger) *messaging.Client {
	if cfg.Firebase.CredentialsFile == "" {
		return nil
	}
	ctx := context.Background()
	fbApp, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	if err != nil {
		errorLog.Printf("firebase init: %v", err)
		return nil
	}
	client, err := fbApp.Messaging(ctx)
	if err != nil {
		errorLog.Printf("firebase messaging: %v", err)
		return nil
	}
	return client
}
