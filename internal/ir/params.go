package ir

// tap is a single early reflection: delay in milliseconds and linear gain.
type tap struct {
	delayMS float64
	gain    float64
}

// params describes how one preset's impulse response is synthesized.
type params struct {
	directGain       float64
	reflections      []tap
	crossGain        float64
	crossDelayMS     float64
	crossLPFHz       float64
	crossReflections []tap
}

var presetParams = map[Preset]params{
	PresetLight: {
		directGain: 1.0,
		reflections: []tap{
			{1.8, 0.08},
			{5.2, 0.05},
			{11.0, 0.03},
		},
		crossGain:    0.15,
		crossDelayMS: 0.25,
		crossLPFHz:   3000,
		crossReflections: []tap{
			{3.5, 0.04},
			{8.0, 0.02},
		},
	},
	PresetMedium: {
		directGain: 1.0,
		reflections: []tap{
			{1.5, 0.12},
			{3.8, 0.09},
			{6.5, 0.06},
			{10.2, 0.04},
			{15.0, 0.025},
		},
		crossGain:    0.25,
		crossDelayMS: 0.30,
		crossLPFHz:   2500,
		crossReflections: []tap{
			{2.8, 0.06},
			{6.0, 0.04},
			{12.0, 0.02},
		},
	},
	PresetHeavy: {
		directGain: 1.0,
		reflections: []tap{
			{1.2, 0.18},
			{3.0, 0.14},
			{5.5, 0.10},
			{8.0, 0.07},
			{12.0, 0.05},
			{18.0, 0.035},
			{25.0, 0.02},
		},
		crossGain:    0.35,
		crossDelayMS: 0.35,
		crossLPFHz:   2000,
		crossReflections: []tap{
			{2.2, 0.10},
			{5.0, 0.06},
			{9.0, 0.04},
			{15.0, 0.02},
		},
	},
}
