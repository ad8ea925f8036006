package domain

import (
	"go.uber.org/fx"

	"github.com/voicetips/tips-service/internal/domain/dialog"
	"github.com/voicetips/tips-service/internal/domain/notification"
	"github.com/voicetips/tips-service/internal/domain/subscription"
	"github.com/voicetips/tips-service/internal/domain/tip"
)

var Module = fx.Module(
	"domain",
	tip.Module,
	subscription.Module,
	dialog.Module,
	notification.Module,
)
