package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/logger"
	"skillbridge_backend/pkg/monitoring"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VoiceService 语音合成：调用上游 TTS 接口生成音频并写入存储。
// 时长探测为尽力而为，失败不影响主流程。
type VoiceService struct {
	cfg        config.VoiceConfig
	client     *http.Client
	StorageSvc *StorageService
}

func NewVoiceService(cfg config.VoiceConfig, storageSvc *StorageService) *VoiceService {
	return &VoiceService{
		cfg:        cfg,
		client:     &http.Client{Timeout: 30 * time.Second},
		StorageSvc: storageSvc,
	}
}

type ttsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id,omitempty"`
}

// Synthesize 合成语音，返回 MP3 音频字节
func (s *VoiceService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if s.cfg.APIKey == "" {
		return nil, util.ErrAINotConfigured
	}

	body, err := json.Marshal(ttsRequest{Text: text, ModelID: s.cfg.ModelID})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", s.cfg.BaseURL, s.cfg.VoiceID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", s.cfg.APIKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	monitoring.ObserveAICall("tts", "synthesize", start, err)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("TTS API error (status %d): %s", resp.StatusCode, string(errBody))
	}

	return io.ReadAll(resp.Body)
}

// SynthesisResult 语音合成落盘结果
type SynthesisResult struct {
	AudioURL string `json:"audioUrl"`
	Duration int    `json:"duration"` // 秒；探测失败时为 0
}

// SynthesizeToStorage 合成并写入存储，返回可访问的音频地址
func (s *VoiceService) SynthesizeToStorage(ctx context.Context, text string) (*SynthesisResult, error) {
	audio, err := s.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("voice/%s.mp3", uuid.NewString())
	audioURL, err := s.StorageSvc.Upload(ctx, filename, bytes.NewReader(audio), int64(len(audio)), util.MimeMP3)
	if err != nil {
		return nil, err
	}

	result := &SynthesisResult{AudioURL: audioURL}

	// 本地存储时用 ffprobe 探测时长；对象存储不探测
	if local, ok := s.StorageSvc.Provider.(*LocalStorageProvider); ok {
		if info, err := util.GetAudioInfo(local.LocalPath(filename)); err != nil {
			logger.Log.Warn("音频时长探测失败", zap.Error(err), zap.String("file", filename))
		} else {
			result.Duration = int(info.Duration)
		}
	}

	return result, nil
}
