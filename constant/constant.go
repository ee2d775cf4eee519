package constant

const (
	WINDOW_TITLE = "aqpin"

	// 68B09E E clock: 8 MHz crystal divided by four.
	CPU_HZ      = 8_000_000 / 4
	FRAME_HZ    = 60
	IRQ_HZ      = 976
	FRAME_TICKS = CPU_HZ / FRAME_HZ
)
