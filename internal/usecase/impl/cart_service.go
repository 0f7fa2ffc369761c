package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/domain/session"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cartState is the single in-memory source of truth for one session's cart.
// The mutex guards snapshot reads and swaps only; remote calls run outside it
// so overlapping operations interleave, and each remote mutation's
// refresh-after-success step converges the view to one valid server snapshot.
type cartState struct {
	mu       sync.Mutex
	cart     entity.Cart
	mode     entity.AuthorityMode
	hydrated bool
}

// CartServiceParams holds dependencies for the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	Local  repository.LocalCartStore
	Remote repository.RemoteCartStore
	Events service.EventPublisher
	Logger *slog.Logger
}

// cartService routes each cart operation to whichever store is authoritative
// for the session and keeps the in-memory view consistent with it. Local mode
// trusts its own merge logic and mirrors every mutation into the durable
// cache; remote mode trusts the server and re-fetches after every successful
// mutation. The asymmetry is deliberate.
type cartService struct {
	mu       sync.RWMutex
	sessions map[string]*cartState

	local  repository.LocalCartStore
	remote repository.RemoteCartStore
	events service.EventPublisher
	logger *slog.Logger
}

// NewCartService creates the cart reconciliation service.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		sessions: make(map[string]*cartState),
		local:    params.Local,
		remote:   params.Remote,
		events:   params.Events,
		logger:   params.Logger,
	}
}

// state returns the session's cart state, creating it on first use.
func (s *cartService) state(sessionID string) *cartState {
	s.mu.RLock()
	st, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return st
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok = s.sessions[sessionID]; !ok {
		st = &cartState{}
		s.sessions[sessionID] = st
	}

	return st
}

// begin resolves the session, recomputes the authority mode, and runs the
// hydration / transition step when the mode changed since the last operation.
// Local to remote discards the local cart in favor of the server's state;
// remote to local resets memory and repopulates it from the durable cache.
func (s *cartService) begin(ctx context.Context) (session.Session, *cartState, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return session.Session{}, nil, domainerrors.ErrSessionMissing
	}

	st := s.state(sess.ID)
	mode := sess.Authority()

	st.mu.Lock()
	upToDate := st.hydrated && st.mode == mode
	st.mu.Unlock()
	if upToDate {
		return sess, st, nil
	}

	if mode == entity.AuthorityRemote {
		// Entering remote authority is the login transition: the server cart
		// wins and the pre-login local cart is discarded, not merged.
		if _, err := s.refreshFromServer(ctx, sess, st); err != nil {
			return sess, nil, err
		}

		return sess, st, nil
	}

	items, err := s.local.Load(ctx, sess.ID)
	if err != nil {
		// Storage trouble is never surfaced; the session starts empty.
		s.log(ctx).Warn("failed to load local cart, starting empty",
			slog.String("session_id", sess.ID),
			slog.Any("error", err),
		)
		items = []entity.LineItem{}
	}

	st.mu.Lock()
	st.cart = entity.Cart{Items: items}
	st.mode = entity.AuthorityLocal
	st.hydrated = true
	st.mu.Unlock()

	return sess, st, nil
}

// refreshFromServer replaces the whole in-memory list with the server's
// canonical cart and clears the durable local cache; the two stores are never
// authoritative at the same time. On failure the last known-good snapshot is
// kept; during the login transition the state is still unhydrated then, so
// the next operation retries the fetch. A failed refresh after a successful
// mutation does not re-run the transition, it just reports the stale view.
func (s *cartService) refreshFromServer(ctx context.Context, sess session.Session, st *cartState) (usecase.CartView, error) {
	cred := sess.Credential
	if cred == nil {
		return usecase.CartView{}, domainerrors.ErrRemoteCartUnavailable
	}

	remoteCart, err := s.remote.Fetch(ctx, *cred)
	if err != nil {
		s.log(ctx).Warn("remote cart fetch failed", slog.Any("error", err))

		return usecase.CartView{}, domainerrors.ErrRemoteCartUnavailable
	}
	if remoteCart == nil {
		remoteCart = &entity.Cart{Items: []entity.LineItem{}}
	}

	st.mu.Lock()
	st.cart = *remoteCart
	st.mode = entity.AuthorityRemote
	st.hydrated = true
	view := s.viewLocked(st)
	st.mu.Unlock()

	if err := s.local.Clear(ctx, sess.ID); err != nil {
		s.log(ctx).Warn("failed to clear local cart cache",
			slog.String("session_id", sess.ID),
			slog.Any("error", err),
		)
	}

	return view, nil
}

// Cart returns the current cart for the session.
func (s *cartService) Cart(ctx context.Context) (usecase.CartView, error) {
	_, st, err := s.begin(ctx)
	if err != nil {
		return usecase.CartView{}, err
	}

	return s.view(st), nil
}

// Add merges a candidate line into the cart.
func (s *cartService) Add(ctx context.Context, input usecase.AddItemInput) (usecase.CartView, error) {
	sess, st, err := s.begin(ctx)
	if err != nil {
		return usecase.CartView{}, err
	}

	if sess.Authority() == entity.AuthorityRemote {
		result := s.remote.Add(ctx, *sess.Credential, input.VariantID, input.Quantity)
		if !result.Success {
			return s.view(st), domainerrors.RemoteCartError(result.Message)
		}

		view, err := s.refreshFromServer(ctx, sess, st)
		if err != nil {
			return s.view(st), err
		}
		s.publish(ctx, sess, st, service.CartEventAdd, input.VariantID, input.Quantity)

		return view, nil
	}

	candidate := entity.NewLineItem(input.VariantID, input.Name, input.UnitPrice, input.Quantity, input.Stock)
	candidate.Size = input.Size
	candidate.Color = input.Color
	candidate.ImageURL = input.ImageURL

	st.mu.Lock()
	line := st.cart.MergeAdd(candidate)
	view := s.viewLocked(st)
	st.mu.Unlock()

	s.persist(ctx, sess, view.Items)
	s.publish(ctx, sess, st, service.CartEventAdd, line.VariantID, line.Quantity)

	return view, nil
}

// UpdateQuantity sets a line's quantity, clamped to [1, stock].
func (s *cartService) UpdateQuantity(ctx context.Context, lineID uuid.UUID, quantity int) (usecase.CartView, error) {
	sess, st, err := s.begin(ctx)
	if err != nil {
		return usecase.CartView{}, err
	}

	st.mu.Lock()
	line, found := st.cart.FindByID(lineID)
	st.mu.Unlock()
	if !found {
		return s.view(st), domainerrors.ErrCartLineNotFound
	}

	if sess.Authority() == entity.AuthorityRemote {
		if line.RemoteID == "" {
			// Inconsistent state: the line was never confirmed by the
			// server, so there is nothing to address the update to.
			return s.view(st), domainerrors.ErrCartItemNotSynced
		}

		clamped := entity.ClampQuantity(quantity, line.Stock)
		result := s.remote.Update(ctx, *sess.Credential, line.RemoteID, clamped)
		if !result.Success {
			return s.view(st), domainerrors.RemoteCartError(result.Message)
		}

		view, err := s.refreshFromServer(ctx, sess, st)
		if err != nil {
			return s.view(st), err
		}
		s.publish(ctx, sess, st, service.CartEventUpdate, line.VariantID, clamped)

		return view, nil
	}

	st.mu.Lock()
	st.cart.SetQuantity(lineID, quantity)
	updated, _ := st.cart.FindByID(lineID)
	view := s.viewLocked(st)
	st.mu.Unlock()

	s.persist(ctx, sess, view.Items)
	s.publish(ctx, sess, st, service.CartEventUpdate, updated.VariantID, updated.Quantity)

	return view, nil
}

// Remove deletes the identified line.
func (s *cartService) Remove(ctx context.Context, lineID uuid.UUID) (usecase.CartView, error) {
	sess, st, err := s.begin(ctx)
	if err != nil {
		return usecase.CartView{}, err
	}

	st.mu.Lock()
	line, found := st.cart.FindByID(lineID)
	st.mu.Unlock()
	if !found {
		return s.view(st), domainerrors.ErrCartLineNotFound
	}

	if sess.Authority() == entity.AuthorityRemote {
		if line.RemoteID == "" {
			return s.view(st), domainerrors.ErrCartItemNotSynced
		}

		result := s.remote.Remove(ctx, *sess.Credential, line.RemoteID)
		if !result.Success {
			return s.view(st), domainerrors.RemoteCartError(result.Message)
		}

		view, err := s.refreshFromServer(ctx, sess, st)
		if err != nil {
			return s.view(st), err
		}
		s.publish(ctx, sess, st, service.CartEventRemove, line.VariantID, 0)

		return view, nil
	}

	st.mu.Lock()
	st.cart.Remove(lineID)
	view := s.viewLocked(st)
	st.mu.Unlock()

	s.persist(ctx, sess, view.Items)
	s.publish(ctx, sess, st, service.CartEventRemove, line.VariantID, 0)

	return view, nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) (usecase.CartView, error) {
	sess, st, err := s.begin(ctx)
	if err != nil {
		return usecase.CartView{}, err
	}

	if sess.Authority() == entity.AuthorityRemote {
		result := s.remote.Clear(ctx, *sess.Credential)
		if !result.Success {
			return s.view(st), domainerrors.RemoteCartError(result.Message)
		}

		st.mu.Lock()
		st.cart = entity.Cart{Items: []entity.LineItem{}}
		view := s.viewLocked(st)
		st.mu.Unlock()

		s.publish(ctx, sess, st, service.CartEventClear, "", 0)

		return view, nil
	}

	st.mu.Lock()
	st.cart = entity.Cart{Items: []entity.LineItem{}}
	view := s.viewLocked(st)
	st.mu.Unlock()

	if err := s.local.Clear(ctx, sess.ID); err != nil {
		s.log(ctx).Warn("failed to delete local cart cache",
			slog.String("session_id", sess.ID),
			slog.Any("error", err),
		)
	}
	s.publish(ctx, sess, st, service.CartEventClear, "", 0)

	return view, nil
}

// IsInCart reports whether any line references the variant.
func (s *cartService) IsInCart(ctx context.Context, variantID string) (bool, error) {
	_, st, err := s.begin(ctx)
	if err != nil {
		return false, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	return st.cart.Contains(variantID), nil
}

// SyncWithServer re-fetches the canonical cart. Anonymous sessions get their
// current view back with no error.
func (s *cartService) SyncWithServer(ctx context.Context) (usecase.CartView, error) {
	sess, st, err := s.begin(ctx)
	if err != nil {
		return usecase.CartView{}, err
	}

	if sess.Authority() != entity.AuthorityRemote {
		return s.view(st), nil
	}

	view, err := s.refreshFromServer(ctx, sess, st)
	if err != nil {
		return s.view(st), err
	}
	s.publish(ctx, sess, st, service.CartEventSync, "", 0)

	return view, nil
}

// EndSession drops the session's in-memory state. Anonymous carts are
// persisted first so the session can be resumed.
func (s *cartService) EndSession(ctx context.Context) error {
	sess, st, err := s.begin(ctx)
	if err != nil {
		return err
	}

	if sess.Authority() == entity.AuthorityLocal {
		st.mu.Lock()
		view := s.viewLocked(st)
		st.mu.Unlock()
		s.persist(ctx, sess, view.Items)
	}

	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()

	return nil
}

// persist mirrors a cart snapshot into the durable cache. items must be a
// copy, never the live backing array, since serialization runs outside the
// state lock. Failures are logged and swallowed; the in-memory cart stays
// authoritative.
func (s *cartService) persist(ctx context.Context, sess session.Session, items []entity.LineItem) {
	if err := s.local.Save(ctx, sess.ID, items); err != nil {
		s.log(ctx).Warn("failed to persist local cart",
			slog.String("session_id", sess.ID),
			slog.Any("error", err),
		)
	}
}

// publish emits a cart activity event, best-effort.
func (s *cartService) publish(ctx context.Context, sess session.Session, st *cartState, action, variantID string, quantity int) {
	st.mu.Lock()
	itemCount := st.cart.TotalQuantity()
	mode := st.mode
	st.mu.Unlock()

	event := &service.CartEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Action:    action,
		OwnerID:   sess.OwnerID(),
		Authority: string(mode),
		VariantID: variantID,
		Quantity:  quantity,
		ItemCount: itemCount,
	}

	if err := s.events.PublishCartEvent(ctx, event); err != nil {
		s.log(ctx).Warn("failed to publish cart event",
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

// view snapshots the cart for consumers; the returned slice is a copy.
func (s *cartService) view(st *cartState) usecase.CartView {
	st.mu.Lock()
	defer st.mu.Unlock()

	return s.viewLocked(st)
}

func (s *cartService) viewLocked(st *cartState) usecase.CartView {
	items := make([]entity.LineItem, len(st.cart.Items))
	copy(items, st.cart.Items)

	return usecase.CartView{
		Items:      items,
		TotalItems: st.cart.TotalQuantity(),
		TotalPrice: st.cart.TotalPrice(),
	}
}

func (s *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
