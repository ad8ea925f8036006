package business

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/voicetips/tips-service/internal/domain/dialog/consts"
	"github.com/voicetips/tips-service/internal/domain/dialog/deps"
	"github.com/voicetips/tips-service/internal/domain/dialog/dto"
	dialogerrors "github.com/voicetips/tips-service/internal/domain/dialog/errors"
	tipentities "github.com/voicetips/tips-service/internal/domain/tip/entities"
	tiperrors "github.com/voicetips/tips-service/internal/domain/tip/errors"
)

const (
	learnMoreButtonTitle = "Learn More!"

	suggestionSendDaily = "Send daily"
	suggestionAlertMe   = "Alert me of new tips"

	msgNoTips          = "I don't have any tips for that right now. Come back later!"
	msgPushConfirm     = "Ok, I'll start alerting you."
	msgPushDecline     = "Ok, I won't alert you."
	msgUpdateConfirm   = "Ok, I'll start giving you daily updates."
	msgUpdateDecline   = "Ok, I won't give you daily updates."
	msgGenericFailure  = "Something went wrong, please try again later."
	welcomeMessageBase = "Hi! Welcome to Tips! I can offer you tips about the assistant. " +
		"You can choose to hear the most recently added tip, or you can pick a category " +
		"from %s, or I can tell you a tip from a randomly selected category."
)

// UseCase routes one conversational turn to a tip query or to the opt-in
// flow, by intent name
type UseCase struct {
	tips       deps.TipProvider
	subscriber deps.Subscriber
	sessions   deps.SessionStore
	logger     zerolog.Logger
}

func NewUseCase(
	tips deps.TipProvider,
	subscriber deps.Subscriber,
	sessions deps.SessionStore,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		tips:       tips,
		subscriber: subscriber,
		sessions:   sessions,
		logger:     logger,
	}
}

func (u *UseCase) HandleTurn(ctx context.Context, req *dto.TurnRequest) (*dto.TurnResponse, error) {
	u.logger.Debug().
		Str("intent", req.Intent).
		Str("session_id", req.SessionID).
		Msg("handling turn")

	switch req.Intent {
	case consts.IntentWelcome:
		return u.welcome(ctx, req)
	case consts.IntentTellTip:
		return u.tellTip(ctx, req)
	case consts.IntentTellLatestTip:
		return u.tellLatestTip(ctx, req)
	case consts.IntentSetupPush:
		return u.setupPush(req)
	case consts.IntentFinishPushSetup:
		return u.finishPushSetup(ctx, req)
	case consts.IntentSetupUpdate:
		return u.setupUpdate(req)
	case consts.IntentFinishUpdateSetup:
		return u.finishUpdateSetup(req)
	default:
		u.logger.Warn().
			Str("intent", req.Intent).
			Msg("turn with unknown intent")
		return nil, fmt.Errorf("%w: %s", dialogerrors.ErrUnknownIntent, req.Intent)
	}
}

func (u *UseCase) welcome(ctx context.Context, req *dto.TurnRequest) (*dto.TurnResponse, error) {
	categories, err := u.tips.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	// The random sentinel closes the list; it belongs in the suggestions
	// but not in the spoken category enumeration.
	spoken := categories[:len(categories)-1]
	speech := fmt.Sprintf(welcomeMessageBase, strings.Join(spoken, ", "))

	if !req.ScreenOutput {
		return &dto.TurnResponse{Speech: speech}, nil
	}

	return &dto.TurnResponse{
		Speech:      speech,
		Suggestions: categories,
	}, nil
}

func (u *UseCase) tellTip(ctx context.Context, req *dto.TurnRequest) (*dto.TurnResponse, error) {
	tip, err := u.tips.PickByCategory(ctx, req.Params[consts.ParamCategory])
	if err != nil {
		if errors.Is(err, tiperrors.ErrNoTips) {
			return &dto.TurnResponse{Speech: msgNoTips, EndSession: true}, nil
		}
		return nil, err
	}

	if !req.ScreenOutput {
		return &dto.TurnResponse{Speech: tip.Text, EndSession: true}, nil
	}

	resp := tipResponse(tip)

	// Offer the daily-update opt-in once per session to avoid nagging
	state := u.sessions.Get(req.SessionID)
	if !state.DailyNotificationAsked {
		resp.Suggestions = append(resp.Suggestions, suggestionSendDaily)
		state.DailyNotificationAsked = true
	}

	return resp, nil
}

func (u *UseCase) tellLatestTip(ctx context.Context, req *dto.TurnRequest) (*dto.TurnResponse, error) {
	tip, err := u.tips.MostRecent(ctx)
	if err != nil {
		if errors.Is(err, tiperrors.ErrNoTips) {
			return &dto.TurnResponse{Speech: msgNoTips, EndSession: true}, nil
		}
		return nil, err
	}

	if !req.ScreenOutput {
		return &dto.TurnResponse{Speech: tip.Text, EndSession: true}, nil
	}

	resp := tipResponse(tip)

	state := u.sessions.Get(req.SessionID)
	if !state.PushNotificationAsked {
		resp.Suggestions = append(resp.Suggestions, suggestionAlertMe)
		state.PushNotificationAsked = true
	}

	return resp, nil
}

// setupPush emits the permission request naming the intent to invoke once
// granted. The consent UI itself belongs to the host platform.
func (u *UseCase) setupPush(req *dto.TurnRequest) (*dto.TurnResponse, error) {
	return &dto.TurnResponse{
		PermissionRequest: &dto.PermissionRequest{
			Intent: consts.IntentTellLatestTip,
		},
	}, nil
}

// finishPushSetup persists the subscription when consent was granted.
// Either outcome is terminal for the flow; a declined consent is a no-op.
func (u *UseCase) finishPushSetup(ctx context.Context, req *dto.TurnRequest) (*dto.TurnResponse, error) {
	if !req.PermissionGranted {
		u.endSession(req.SessionID)
		return &dto.TurnResponse{Speech: msgPushDecline, EndSession: true}, nil
	}

	if req.UserID == "" {
		return nil, dialogerrors.ErrMissingUserID
	}

	if _, err := u.subscriber.Subscribe(ctx, req.UserID, consts.IntentTellLatestTip, ""); err != nil {
		u.logger.Error().Err(err).
			Str("user_id", req.UserID).
			Msg("failed to persist push subscription")
		u.endSession(req.SessionID)
		return &dto.TurnResponse{Speech: msgGenericFailure, EndSession: true}, nil
	}

	u.endSession(req.SessionID)
	return &dto.TurnResponse{Speech: msgPushConfirm, EndSession: true}, nil
}

// setupUpdate emits the recurring-registration request. Registration
// bookkeeping is owned by the host platform's own scheduler; nothing is
// persisted locally on either side of this flow.
func (u *UseCase) setupUpdate(req *dto.TurnRequest) (*dto.TurnResponse, error) {
	category := req.Params[consts.ParamCategory]

	return &dto.TurnResponse{
		RegisterUpdate: &dto.RegisterUpdateRequest{
			Intent: consts.IntentTellTip,
			Arguments: []dto.Argument{
				{Name: consts.ParamCategory, TextValue: category},
			},
			Frequency: consts.UpdateFrequencyDaily,
		},
	}, nil
}

func (u *UseCase) finishUpdateSetup(req *dto.TurnRequest) (*dto.TurnResponse, error) {
	u.endSession(req.SessionID)

	if req.RegisterStatus == consts.RegisterStatusOK {
		return &dto.TurnResponse{Speech: msgUpdateConfirm, EndSession: true}, nil
	}

	return &dto.TurnResponse{Speech: msgUpdateDecline, EndSession: true}, nil
}

func (u *UseCase) endSession(sessionID string) {
	if sessionID != "" {
		u.sessions.End(sessionID)
	}
}

func tipResponse(tip *tipentities.Tip) *dto.TurnResponse {
	return &dto.TurnResponse{
		Speech: tip.Text,
		Card: &dto.Card{
			Text:        tip.Text,
			ButtonTitle: learnMoreButtonTitle,
			ButtonURL:   tip.URL,
		},
	}
}
