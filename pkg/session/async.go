package session

import (
	"context"
	"errors"
	"sort"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
	"github.com/AlexGronaCW/tickwork/pkg/latent"
	"github.com/AlexGronaCW/tickwork/pkg/ports"
)

// ReloadConfigRequest asks for client settings to be replaced from a file
// path or, when Path is empty, from raw in-memory contents.
type ReloadConfigRequest struct {
	Path     string
	Contents []byte
}

// FeatureStatus is one streamed partial result of a config reload: a feature
// section that has just been applied.
type FeatureStatus struct {
	Feature domain.Feature `json:"feature"`
	Loaded  bool           `json:"loaded"`
}

// ReloadConfigResult is the final result of a config reload: every feature
// whose settings are now loaded.
type ReloadConfigResult struct {
	Features []FeatureStatus `json:"features"`
}

// ReloadConfigAsync runs a config reload as a latent operation. With an
// observer registered, each applied feature section is streamed as a partial
// ReloadConfigResult before the final commit.
func ReloadConfigAsync(
	mgr ports.ActionManager,
	frame ports.DurableFrame,
	sm *Manager,
	owner string,
	req ReloadConfigRequest,
	out latent.Outputs[ReloadConfigResult],
	opts ...latent.Option[ReloadConfigRequest, ReloadConfigResult],
) (*latent.Operation[ReloadConfigRequest, ReloadConfigResult], error) {
	return latent.Launch(mgr, frame, owner, req, out, func(st *latent.State[ReloadConfigResult]) {
		var err error
		if req.Path != "" {
			err = sm.ReloadConfigFile(req.Path)
		} else {
			err = sm.ReloadConfigContents(req.Contents)
		}
		if err != nil {
			st.SetStatus(domain.Failure(statusFor(err), "reload config: %v", err))
			return
		}

		features := sm.Features()
		sort.Slice(features, func(i, j int) bool { return features[i] < features[j] })

		var result ReloadConfigResult
		for _, f := range features {
			status := FeatureStatus{Feature: f, Loaded: true}
			result.Features = append(result.Features, status)
			st.Stream(ReloadConfigResult{Features: []FeatureStatus{status}})
		}

		st.SetResult(result)
		st.SetStatus(domain.Success())
	}, opts...)
}

// SetTokenRequest sets one session token.
type SetTokenRequest struct {
	Type  domain.TokenType
	Value string
}

// SetTokenAsync stores a token as a latent operation. The result carries no
// payload; status and outcome are the only meaningful outputs.
func SetTokenAsync(
	mgr ports.ActionManager,
	frame ports.DurableFrame,
	sm *Manager,
	owner string,
	req SetTokenRequest,
	out latent.Outputs[latent.Noop],
	opts ...latent.Option[SetTokenRequest, latent.Noop],
) (*latent.Operation[SetTokenRequest, latent.Noop], error) {
	return latent.Launch(mgr, frame, owner, req, out, func(st *latent.State[latent.Noop]) {
		if err := sm.SetToken(context.Background(), req.Type, req.Value); err != nil {
			code := domain.StatusTokenStoreFailed
			if errors.Is(err, domain.ErrInstanceReleased) {
				code = domain.StatusInstanceReleased
			}
			st.SetStatus(domain.Failure(code, "set token: %v", err))
			return
		}
		st.SetStatus(domain.Success())
	}, opts...)
}

// SettingsLoadedRequest queries whether one feature has loaded settings.
type SettingsLoadedRequest struct {
	Feature domain.Feature
}

// AreSettingsLoadedAsync runs the settings-loaded query as a latent
// operation. The query itself cannot fail: a released instance or missing
// section simply reports false.
func AreSettingsLoadedAsync(
	mgr ports.ActionManager,
	frame ports.DurableFrame,
	sm *Manager,
	owner string,
	req SettingsLoadedRequest,
	out latent.Outputs[bool],
	opts ...latent.Option[SettingsLoadedRequest, bool],
) (*latent.Operation[SettingsLoadedRequest, bool], error) {
	return latent.Launch(mgr, frame, owner, req, out, func(st *latent.State[bool]) {
		st.SetResult(sm.AreSettingsLoaded(req.Feature))
		st.SetStatus(domain.Success())
	}, opts...)
}
