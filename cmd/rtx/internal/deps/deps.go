package deps

import (
	"github.com/rotisserie/eris"

	"github.com/tecskill/rtx-cli/internal/clients/api"
	"github.com/tecskill/rtx-cli/internal/services/config"
	"github.com/tecskill/rtx-cli/internal/services/session"
)

// Setup builds the session store and API client every command depends on.
// The persisted session is resolved before the client is handed out, so no
// authenticated call can race the initial load.
func Setup() (api.ClientInterface, *session.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, eris.Wrap(err, "failed to load configuration")
	}

	sess, err := session.NewService()
	if err != nil {
		return nil, nil, eris.Wrap(err, "failed to create session store")
	}
	sess.Load()

	return api.NewClient(cfg.BaseURL, cfg.ServiceToken, sess), sess, nil
}
