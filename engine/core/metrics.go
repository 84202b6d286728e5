package core

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

const avgCount uint8 = 30

// How many frames pass between process memory samples. Reading the OS
// counters every frame is wasteful; RSS moves slowly.
const processSampleInterval int32 = 120

// FrameStats accumulates per-frame timing into a rolling millisecond average
// and a frames-per-second figure, plus an occasional process memory sample.
// Pure bookkeeping: it has no effect on scheduling decisions.
type FrameStats struct {
	frameAVGCounter    uint8
	msTimes            [avgCount]float64
	msAvg              float64
	frames             int32
	framesSinceSample  int32
	accumulatedFrameMS float64
	fps                float64

	proc *process.Process
	rss  uint64
}

func NewFrameStats() *FrameStats {
	s := &FrameStats{}
	// Best effort; stats simply omit memory if the handle cannot be opened.
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		s.proc = proc
	}
	return s
}

// Update folds one frame's elapsed time (seconds) into the accumulators.
func (s *FrameStats) Update(frameElapsed float64) {
	frameMS := frameElapsed * 1000.0
	s.msTimes[s.frameAVGCounter] = frameMS
	if s.frameAVGCounter == avgCount-1 {
		s.msAvg = 0
		for i := uint8(0); i < avgCount; i++ {
			s.msAvg += s.msTimes[i]
		}
		s.msAvg /= float64(avgCount)
	}
	s.frameAVGCounter++
	s.frameAVGCounter %= avgCount

	s.accumulatedFrameMS += frameMS
	if s.accumulatedFrameMS > 1000 {
		s.fps = float64(s.frames)
		s.accumulatedFrameMS -= 1000
		s.frames = 0
	}
	s.frames++

	s.framesSinceSample++
	if s.framesSinceSample >= processSampleInterval {
		s.framesSinceSample = 0
		s.sampleProcess()
	}
}

func (s *FrameStats) sampleProcess() {
	if s.proc == nil {
		return
	}
	info, err := s.proc.MemoryInfo()
	if err != nil {
		return
	}
	s.rss = info.RSS
}

func (s *FrameStats) FPS() float64 {
	return s.fps
}

func (s *FrameStats) FrameTime() float64 {
	return s.msAvg
}

// Frame returns the FPS and rolling frame time in this order.
func (s *FrameStats) Frame() (float64, float64) {
	return s.fps, s.msAvg
}

// RSS returns the most recently sampled resident set size in bytes, or zero
// if no sample has been taken yet.
func (s *FrameStats) RSS() uint64 {
	return s.rss
}
