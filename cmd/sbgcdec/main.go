package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gimbalworks/sbgcdec/internal/config"
	"github.com/gimbalworks/sbgcdec/internal/decode"
	"github.com/gimbalworks/sbgcdec/internal/observability"
	"github.com/gimbalworks/sbgcdec/internal/sbgc"
	"github.com/gimbalworks/sbgcdec/internal/sim"
)

func main() {
	hexBuf := flag.String("hex", "", "hex-encoded step buffer to decode once")
	input := flag.String("input", "", "binary file streamed through the step runner")
	ready := flag.Float64("ready", 1, "readiness gate sample (threshold 0.5)")
	chunk := flag.Int("chunk", sbgc.MaxFrameBytes, "step buffer width for -input")
	encodeID := flag.Int("encode", -1, "emit a well-formed frame for this command id and exit")
	encodeData := flag.String("data", "", "hex payload for -encode")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger := observability.InitLogger("sbgcdec", config.LogConfig{Level: *logLevel})

	switch {
	case *encodeID >= 0:
		if *encodeID > 255 {
			logger.Fatal().Int("id", *encodeID).Msg("command id out of range")
		}
		data, err := parseHex(*encodeData)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid -data payload")
		}
		frame, err := sbgc.Encode(sbgc.Command{ID: uint8(*encodeID), Data: data})
		if err != nil {
			logger.Fatal().Err(err).Msg("encode failed")
		}
		fmt.Println(hex.EncodeToString(frame))

	case *hexBuf != "":
		buf, err := parseHex(*hexBuf)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid -hex buffer")
		}
		if err := decode.ValidateBuffer(buf); err != nil {
			logger.Fatal().Err(err).Msg("buffer rejected")
		}
		block := decode.New(func() decode.Parser { return sbgc.NewParser() })
		res := block.Step(buf, *ready)
		fmt.Printf("command_id=%g completion=%g parse_errors=%d\n",
			res.CommandID, res.Completion, res.ParseErrors)

	case *input != "":
		data, err := os.ReadFile(*input)
		if err != nil {
			logger.Fatal().Err(err).Msg("read input")
		}
		src, err := sim.NewChunkSource(data, *chunk)
		if err != nil {
			logger.Fatal().Err(err).Msg("chunk source")
		}
		block := decode.New(func() decode.Parser { return sbgc.NewParser() })
		sink := &sim.ResultList{}
		steps, err := sim.NewRunner(block, logger).Run(src, sink)
		if err != nil {
			logger.Fatal().Err(err).Msg("run failed")
		}
		decoded := 0
		for _, res := range sink.Results {
			if res.Decoded() {
				decoded++
			}
		}
		logger.Info().Int("steps", steps).Int("decoded", decoded).Msg("stream done")

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func parseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}
