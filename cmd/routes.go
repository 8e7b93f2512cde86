package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	homeownerMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("homeowner"))
	proMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("pro"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUser))
	mux.Put("/user", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Post("/device_token", authMiddleware.ThenFunc(app.deviceTokenHandler.Register))

	// Homes
	mux.Post("/home", homeownerMiddleware.ThenFunc(app.homeHandler.CreateHome))
	mux.Get("/home/mine", homeownerMiddleware.ThenFunc(app.homeHandler.GetMyHomes))
	mux.Get("/home/:id", authMiddleware.ThenFunc(app.homeHandler.GetHome))
	mux.Put("/home", homeownerMiddleware.ThenFunc(app.homeHandler.UpdateHome))
	mux.Del("/home/:id", homeownerMiddleware.ThenFunc(app.homeHandler.DeleteHome))

	// Connections
	mux.Get("/connection/home/:home_id", homeownerMiddleware.ThenFunc(app.connectionHandler.GetByHome))
	mux.Get("/connection/mine", proMiddleware.ThenFunc(app.connectionHandler.GetMine))
	mux.Get("/connection/:id/summary", authMiddleware.ThenFunc(app.connectionHandler.GetSummary))
	mux.Post("/connection/:id/revoke", homeownerMiddleware.ThenFunc(app.connectionHandler.Revoke))

	// Invitations
	mux.Post("/invitation", homeownerMiddleware.ThenFunc(app.invitationHandler.CreateInvitation))
	mux.Get("/invitation/home/:home_id", homeownerMiddleware.ThenFunc(app.invitationHandler.GetByHome))
	mux.Post("/invitation/accept", proMiddleware.ThenFunc(app.invitationHandler.Accept))
	mux.Post("/invitation/decline", proMiddleware.ThenFunc(app.invitationHandler.Decline))

	// Service requests
	mux.Post("/request", homeownerMiddleware.ThenFunc(app.requestHandler.CreateRequest))
	mux.Get("/request/get", authMiddleware.ThenFunc(app.requestHandler.GetRequests))
	mux.Get("/request/:id", authMiddleware.ThenFunc(app.requestHandler.GetRequest))
	mux.Post("/request/transition", authMiddleware.ThenFunc(app.requestHandler.Transition))

	// Quotes
	mux.Post("/quote", proMiddleware.ThenFunc(app.quoteHandler.CreateQuote))
	mux.Get("/quote/:id", authMiddleware.ThenFunc(app.quoteHandler.GetQuote))

	// Submissions and decisions
	mux.Post("/submission", proMiddleware.ThenFunc(app.submissionHandler.CreateSubmission))
	mux.Get("/submission/home/:home_id", homeownerMiddleware.ThenFunc(app.submissionHandler.GetPendingByHome))
	mux.Get("/submission/:id", authMiddleware.ThenFunc(app.submissionHandler.GetSubmission))
	mux.Post("/submission/decision", homeownerMiddleware.ThenFunc(app.submissionHandler.Decide))

	// Service records
	mux.Post("/record", proMiddleware.ThenFunc(app.recordHandler.CreateDocumented))
	mux.Get("/record/home/:home_id", authMiddleware.ThenFunc(app.recordHandler.GetHomeHistory))
	mux.Get("/record/:id", authMiddleware.ThenFunc(app.recordHandler.GetRecord))

	// Warranties
	mux.Post("/warranty", homeownerMiddleware.ThenFunc(app.warrantyHandler.CreateWarranty))
	mux.Get("/warranty/home/:home_id", homeownerMiddleware.ThenFunc(app.warrantyHandler.GetByHome))
	mux.Put("/warranty", homeownerMiddleware.ThenFunc(app.warrantyHandler.UpdateWarranty))
	mux.Del("/warranty/:id", homeownerMiddleware.ThenFunc(app.warrantyHandler.DeleteWarranty))

	// Reminders
	mux.Post("/reminder", homeownerMiddleware.ThenFunc(app.reminderHandler.CreateReminder))
	mux.Get("/reminder/home/:home_id", homeownerMiddleware.ThenFunc(app.reminderHandler.GetByHome))
	mux.Post("/reminder/status", homeownerMiddleware.ThenFunc(app.reminderHandler.SetStatus))
	mux.Del("/reminder/:id", homeownerMiddleware.ThenFunc(app.reminderHandler.DeleteReminder))

	// Chats and messages
	mux.Post("/chat", authMiddleware.ThenFunc(app.chatHandler.GetOrCreateChat))
	mux.Get("/chat/mine", authMiddleware.ThenFunc(app.chatHandler.GetMyChats))
	mux.Del("/chat/:id", authMiddleware.ThenFunc(app.chatHandler.DeleteChat))
	mux.Post("/message", authMiddleware.ThenFunc(app.messageHandler.SendMessage))
	mux.Get("/message/chat/:chat_id", authMiddleware.ThenFunc(app.messageHandler.GetMessages))
	mux.Del("/message/:id", authMiddleware.ThenFunc(app.messageHandler.DeleteMessage))

	mux.Get("/ws", http.HandlerFunc(app.WebSocketHandler))

	return mux
}
