package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"

	"golang-crypto-sentiment/internal/entity"
	"golang-crypto-sentiment/internal/sentiment/config"
	"golang-crypto-sentiment/pkg/logger"

	onnxruntime "github.com/yalue/onnxruntime_go"
)

// onnxClassifierRepository runs a local 3-class sentiment model through ONNX
// Runtime. The model is loaded once at construction; Classify is safe to call
// from the aggregation cycle without warm-up cost.
type onnxClassifierRepository struct {
	session *onnxruntime.DynamicAdvancedSession
	vocab   map[string]int64
	unkID   int64
	padID   int64
	maxLen  int
	logger  *logger.Logger
}

// NewONNXClassifierRepository loads the ONNX model and its vocabulary file and
// returns a SentimentClassifierRepository running inference locally.
func NewONNXClassifierRepository(cfg config.ONNX, log *logger.Logger) (SentimentClassifierRepository, error) {
	if err := onnxruntime.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX runtime: %w", err)
	}

	vocab, err := loadVocab(cfg.VocabPath)
	if err != nil {
		return nil, err
	}

	options, err := onnxruntime.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to create session options: %w", err)
	}
	defer options.Destroy()

	session, err := onnxruntime.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{"input_ids", "attention_mask"}, []string{"logits"}, options)
	if err != nil {
		return nil, fmt.Errorf("failed to load ONNX model: %w", err)
	}

	repo := &onnxClassifierRepository{
		session: session,
		vocab:   vocab,
		maxLen:  cfg.MaxSequenceLength,
		logger:  log,
	}
	repo.unkID = vocab["[UNK]"]
	repo.padID = vocab["[PAD]"]
	return repo, nil
}

func loadVocab(path string) (map[string]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocab file: %w", err)
	}
	var vocab map[string]int64
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocab file: %w", err)
	}
	return vocab, nil
}

// Classify tokenizes text, runs inference and softmaxes the logits into a
// probability vector.
func (r *onnxClassifierRepository) Classify(ctx context.Context, text string) (entity.SentimentVector, error) {
	if err := ctx.Err(); err != nil {
		return entity.SentimentVector{}, err
	}

	inputIDs, attentionMask := r.encode(text)

	shape := onnxruntime.NewShape(1, int64(r.maxLen))
	inputTensor, err := onnxruntime.NewTensor(shape, inputIDs)
	if err != nil {
		return entity.SentimentVector{}, fmt.Errorf("failed to create input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	maskTensor, err := onnxruntime.NewTensor(shape, attentionMask)
	if err != nil {
		return entity.SentimentVector{}, fmt.Errorf("failed to create attention mask tensor: %w", err)
	}
	defer maskTensor.Destroy()

	logits := make([]float32, 3)
	logitsTensor, err := onnxruntime.NewTensor(onnxruntime.NewShape(1, 3), logits)
	if err != nil {
		return entity.SentimentVector{}, fmt.Errorf("failed to create output tensor: %w", err)
	}
	defer logitsTensor.Destroy()

	err = r.session.Run(
		[]onnxruntime.Value{inputTensor, maskTensor},
		[]onnxruntime.Value{logitsTensor},
	)
	if err != nil {
		return entity.SentimentVector{}, fmt.Errorf("inference failed: %w", err)
	}

	probs := softmax(logitsTensor.GetData())
	return entity.SentimentVector{
		Negative: probs[0],
		Neutral:  probs[1],
		Positive: probs[2],
	}, nil
}

// encode turns text into fixed-length input_ids and attention_mask slices.
// Tokens absent from the vocabulary map to the [UNK] id.
func (r *onnxClassifierRepository) encode(text string) ([]int64, []int64) {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})

	inputIDs := make([]int64, r.maxLen)
	attentionMask := make([]int64, r.maxLen)
	for i := 0; i < r.maxLen; i++ {
		if i < len(tokens) {
			id, ok := r.vocab[tokens[i]]
			if !ok {
				id = r.unkID
			}
			inputIDs[i] = id
			attentionMask[i] = 1
		} else {
			inputIDs[i] = r.padID
		}
	}
	return inputIDs, attentionMask
}

func softmax(logits []float32) []float64 {
	max := logits[0]
	for _, l := range logits[1:] {
		if l > max {
			max = l
		}
	}

	exps := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		exps[i] = math.Exp(float64(l - max))
		sum += exps[i]
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}

// Destroy releases the ONNX session.
func (r *onnxClassifierRepository) Destroy() {
	if r.session != nil {
		r.session.Destroy()
		r.session = nil
	}
}
