package tui

import (
	"fmt"
	"strings"

	"vidsense/config"
	"vidsense/poller"
	"vidsense/viewmodel"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("🎬 Video Analysis"))
	b.WriteString("\n\n")

	b.WriteString(InfoStyle.Render("File: " + m.videoPath))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Logs
	if len(m.snap.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, entry := range m.snap.Logs {
			b.WriteString(InfoStyle.Render("   " + entry.Message))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Results
	if m.snap.State == poller.StateCompleted && m.snap.View != nil {
		b.WriteString(BoxStyle.Render(m.formatResult(m.snap.View)))
		b.WriteString("\n\n")
	}

	// Help text
	if !m.started {
		b.WriteString(InfoStyle.Render("Press 'a' to analyze | Press 'q' or Ctrl+C to quit"))
	} else if !m.snap.State.Terminal() {
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	} else {
		b.WriteString(HighlightStyle.Render("Press 'q' or Ctrl+C to exit"))
	}

	return b.String()
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.snap.State {
	case poller.StateIdle:
		return HighlightStyle.Render("👋 Ready to analyze!")
	case poller.StateUploading:
		return StatusStyle.Render("⬆️  Uploading video...")
	case poller.StateStarting:
		return StatusStyle.Render("🚀 Starting analysis job...")
	case poller.StatePending:
		return StatusStyle.Render("⏳ Queued, waiting for a worker...")
	case poller.StateProcessing:
		return StatusStyle.Render(fmt.Sprintf("⚙️  %s (%.0f%%)", m.snap.Progress.Step, m.snap.Progress.Percent))
	case poller.StateCompleted:
		return HighlightStyle.Render("✅ COMPLETE")
	case poller.StateFailed:
		errMsg := "Unknown error"
		if m.snap.Err != nil {
			errMsg = m.snap.Err.Error()
		}
		return ErrorStyle.Render("❌ " + errMsg)
	case poller.StateTimedOut:
		return ErrorStyle.Render("⌛ Analysis timed out")
	default:
		return ""
	}
}

// formatResult renders the aggregated view model
func (m Model) formatResult(view *viewmodel.ViewModel) string {
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("Analysis Result"))
	b.WriteString("\n\n")

	b.WriteString("Overall mood: ")
	b.WriteString(EmotionStyle(view.Dominant).Render(string(view.Dominant.Label)))
	b.WriteString(fmt.Sprintf("   Language: %s\n\n", view.Language))

	if len(view.Segments) > 0 {
		b.WriteString("Transcript:\n")
		for _, seg := range view.Segments {
			line := fmt.Sprintf("  [%6.1fs] %s ",
				seg.Segment.Start,
				viewmodel.Truncate(seg.Segment.Text, config.MaxSegmentPreview))
			b.WriteString(line)
			b.WriteString(EmotionStyle(seg.Tag).Render(string(seg.Tag.Label)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(view.Scenes) > 0 {
		b.WriteString("Scenes:\n")
		for i, sc := range view.Scenes {
			b.WriteString(fmt.Sprintf("  Scene %d (%.1fs to %.1fs): %s\n",
				i+1, sc.Scene.StartTime, sc.Scene.EndTime,
				viewmodel.Truncate(sc.Scene.Description, config.MaxSegmentPreview)))
			for _, line := range sc.Dialogue {
				b.WriteString("    ")
				b.WriteString(EmotionStyle(line.Tag).Render(string(line.Tag.Label)))
				b.WriteString(" " + viewmodel.Truncate(line.Text, config.MaxSegmentPreview))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if len(view.Captions) > 0 {
		b.WriteString(fmt.Sprintf("Frame captions (first %d):\n", len(view.Captions)))
		for _, caption := range view.Captions {
			b.WriteString("  • " + caption + "\n")
		}
	}

	return b.String()
}
