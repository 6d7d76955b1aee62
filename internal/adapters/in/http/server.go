// Package http is the inbound HTTP adapter. It binds and validates request
// bodies, resolves the caller's identity from the bearer token, invokes the
// command and query handlers, and maps domain errors to wire codes.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hankkuu/delivery-demo/internal/core/application/usecases/commands"
	"github.com/hankkuu/delivery-demo/internal/core/application/usecases/queries"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/pkg/auth"
)

// TokenIssuer creates signed access tokens for authenticated members.
type TokenIssuer interface {
	CreateToken(principal auth.MemberPrincipal) (string, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	signUpHandler            commands.SignUpMemberCommandHandler
	createDeliveryHandler    commands.CreateDeliveryCommandHandler
	changeDestinationHandler commands.ChangeDestinationCommandHandler
	changeStatusHandler      commands.ChangeDeliveryStatusCommandHandler

	// Query handlers
	authenticateHandler   queries.AuthenticateMemberQueryHandler
	getDeliveryHandler    queries.GetDeliveryQueryHandler
	listDeliveriesHandler queries.ListDeliveriesQueryHandler

	tokens TokenIssuer
	parser TokenParser
}

// NewServer creates the HTTP server with its use case handlers.
func NewServer(
	signUpHandler commands.SignUpMemberCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	changeDestinationHandler commands.ChangeDestinationCommandHandler,
	changeStatusHandler commands.ChangeDeliveryStatusCommandHandler,
	authenticateHandler queries.AuthenticateMemberQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	listDeliveriesHandler queries.ListDeliveriesQueryHandler,
	tokens TokenIssuer,
	parser TokenParser,
) *Server {
	return &Server{
		signUpHandler:            signUpHandler,
		createDeliveryHandler:    createDeliveryHandler,
		changeDestinationHandler: changeDestinationHandler,
		changeStatusHandler:      changeStatusHandler,
		authenticateHandler:      authenticateHandler,
		getDeliveryHandler:       getDeliveryHandler,
		listDeliveriesHandler:    listDeliveriesHandler,
		tokens:                   tokens,
		parser:                   parser,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(BearerAuth(s.parser))

	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", s.SignUp)
	authGroup.POST("/login", s.Login)

	deliveries := e.Group("/api/deliveries", RequireMember)
	deliveries.POST("", s.CreateDelivery)
	deliveries.GET("", s.ListDeliveries)
	deliveries.GET("/:orderNumber", s.GetDelivery)
	deliveries.PATCH("/:orderNumber/destination", s.ChangeDestination)
	deliveries.PATCH("/:orderNumber/status", s.ChangeStatus)

	// Every other /api path is gated too: an anonymous caller gets the
	// missing-token envelope, never a route-existence hint.
	e.Any("/api/*", unknownAPIRoute, RequireMember)
}

func unknownAPIRoute(ctx echo.Context) error {
	return respondError(ctx, http.StatusNotFound, codeResourceNotFound, "no such resource")
}

// SignUp handles POST /api/auth/signup.
func (s *Server) SignUp(ctx echo.Context) error {
	var req SignUpRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, codeBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return respondValidationError(ctx, err)
	}

	cmd, err := commands.NewSignUpMemberCommand(req.LoginID, req.Password, req.Name)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	created, err := s.signUpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, MemberResponse{
		ID:      created.ID(),
		LoginID: created.LoginID(),
		Name:    created.Name(),
	})
}

// Login handles POST /api/auth/login. On success the access token is returned
// in the body and mirrored in the Authorization response header.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, codeBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return respondValidationError(ctx, err)
	}

	query, err := queries.NewAuthenticateMemberQuery(req.LoginID, req.Password)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	identity, err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	token, err := s.tokens.CreateToken(auth.MemberPrincipal{
		ID:      identity.ID,
		LoginID: identity.LoginID,
		Name:    identity.Name,
		Roles:   []string{"MEMBER"},
	})
	if err != nil {
		return respondDomainError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+token)
	return respondData(ctx, http.StatusOK, TokenResponse{AccessToken: token})
}

// CreateDelivery handles POST /api/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	principal, _ := currentPrincipal(ctx)

	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, codeBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return respondValidationError(ctx, err)
	}

	pickupPoint, err := geoPoint("pickup", req.PickupLat, req.PickupLng)
	if err != nil {
		return respondDomainError(ctx, err)
	}
	deliveryPoint, err := geoPoint("delivery", req.DeliveryLat, req.DeliveryLng)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		principal.ID, req.OrderNumber,
		req.PickupAddress, pickupPoint,
		req.DeliveryAddress, deliveryPoint,
		req.Memo,
	)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/deliveries/"+created.OrderNumber())
	return respondData(ctx, http.StatusCreated, deliveryResponseFromAggregate(created))
}

// GetDelivery handles GET /api/deliveries/:orderNumber.
func (s *Server) GetDelivery(ctx echo.Context) error {
	principal, _ := currentPrincipal(ctx)

	query, err := queries.NewGetDeliveryQuery(principal.ID, ctx.Param("orderNumber"))
	if err != nil {
		return respondDomainError(ctx, err)
	}

	item, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, deliveryResponseFromQuery(item))
}

// ListDeliveries handles GET /api/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context) error {
	principal, _ := currentPrincipal(ctx)

	var params ListDeliveriesParams
	if err := ctx.Bind(&params); err != nil {
		return respondError(ctx, http.StatusBadRequest, codeBadRequest, "invalid query parameters")
	}

	period, err := params.Period()
	if err != nil {
		return respondDomainError(ctx, err)
	}

	query, err := queries.NewListDeliveriesQuery(principal.ID, period, params.Page, params.Size)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	page, err := s.listDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	resp := PageResponse{
		Items:      make([]DeliveryResponse, 0, len(page.Items)),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		Size:       page.Size,
	}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, deliveryResponseFromQuery(item))
	}

	return respondData(ctx, http.StatusOK, resp)
}

// ChangeDestination handles PATCH /api/deliveries/:orderNumber/destination.
func (s *Server) ChangeDestination(ctx echo.Context) error {
	principal, _ := currentPrincipal(ctx)

	var req ChangeDestinationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, codeBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return respondValidationError(ctx, err)
	}

	point, err := geoPoint("delivery", req.DeliveryLat, req.DeliveryLng)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	cmd, err := commands.NewChangeDestinationCommand(
		principal.ID, ctx.Param("orderNumber"), req.DeliveryAddress, point)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if _, err = s.changeDestinationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeStatus handles PATCH /api/deliveries/:orderNumber/status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	principal, _ := currentPrincipal(ctx)

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, codeBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return respondValidationError(ctx, err)
	}

	target, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	cmd, err := commands.NewChangeDeliveryStatusCommand(
		principal.ID, ctx.Param("orderNumber"), target, req.RiderID)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if _, err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
