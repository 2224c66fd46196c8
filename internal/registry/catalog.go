package registry

import (
	"github.com/superliangbot/simlab/internal/sims"
)

var (
	catalog = map[string]SimulationConfig{}
	order   []string
)

func init() {
	register(SimulationConfig{
		Slug:        "ellipse",
		Title:       "Ellipse Geometry",
		Category:    "Astronomy",
		Description: "Semi-axes, foci and eccentricity of an orbit-shaped ellipse",
		Long: "Sweep a point around an ellipse and watch how eccentricity moves " +
			"the foci apart. The string construction r1+r2=2a holds everywhere.",
		Color:  "#7aa2f7",
		Schema: sims.EllipseSchema,
	}, func() Factory { return sims.NewEllipse })

	register(SimulationConfig{
		Slug:        "orbital-motion",
		Title:       "Orbital Motion",
		Category:    "Astronomy",
		Description: "Two-body Kepler orbit with launch-speed control",
		Long: "Launch a planet around its star and see circular, elliptical and " +
			"escape trajectories emerge from one velocity slider.",
		Color:  "#bb9af7",
		Schema: sims.OrbitSchema,
	}, func() Factory { return sims.NewOrbit })

	register(SimulationConfig{
		Slug:        "tidal-forces",
		Title:       "Tidal Forces",
		Category:    "Astronomy",
		Description: "Differential gravity stretching a moon-facing ocean",
		Long: "Gravity falls off with distance, so the near and far sides of a " +
			"body feel different pulls. The difference raises two bulges.",
		Color:  "#2ac3de",
		Schema: sims.TidalForcesSchema,
	}, func() Factory { return sims.NewTidalForces })

	register(SimulationConfig{
		Slug:        "snells-law",
		Title:       "Snell's Law",
		Category:    "Optics",
		Description: "Refraction at an interface, with total internal reflection",
		Long: "n1 sin θ1 = n2 sin θ2. Push the incidence angle past critical in " +
			"the dense-to-rare direction and the refracted ray disappears.",
		Color:  "#7dcfff",
		Schema: sims.SnellsLawSchema,
	}, func() Factory { return sims.NewSnellsLaw })

	register(SimulationConfig{
		Slug:        "prism-dispersion",
		Title:       "Prism Dispersion",
		Category:    "Optics",
		Description: "White light fanning into a spectrum through a prism",
		Long: "Each color sees a slightly different refractive index, so each " +
			"deviates by a different angle. Violet bends most, red least.",
		Color:  "#e0af68",
		Schema: sims.PrismSchema,
	}, func() Factory { return sims.NewPrism })

	register(SimulationConfig{
		Slug:        "projectile",
		Title:       "Projectile Motion",
		Category:    "Mechanics",
		Description: "Parabolic flight from launch angle and speed",
		Long: "Independent horizontal and vertical motion produce a parabola. " +
			"Range peaks at 45 degrees; complementary angles land together.",
		Color:  "#9ece6a",
		Schema: sims.ProjectileSchema,
	}, func() Factory { return sims.NewProjectile })

	register(SimulationConfig{
		Slug:        "pendulum",
		Title:       "Simple Pendulum",
		Category:    "Mechanics",
		Description: "Small-angle oscillation and the period law",
		Long: "T = 2π√(L/g) to first order. Watch the energy trade between " +
			"kinetic at the bottom and potential at the turning points.",
		Color:  "#f7768e",
		Schema: sims.PendulumSchema,
	}, func() Factory { return sims.NewPendulum })

	register(SimulationConfig{
		Slug:        "spring-mass",
		Title:       "Spring-Mass Oscillator",
		Category:    "Mechanics",
		Description: "Damped harmonic motion on a horizontal spring",
		Long: "Hooke's law drives simple harmonic motion; damping decides " +
			"whether the mass rings, creeps, or critically settles.",
		Color:  "#ff9e64",
		Schema: sims.SpringMassSchema,
	}, func() Factory { return sims.NewSpringMass })

	register(SimulationConfig{
		Slug:        "terminal-velocity",
		Title:       "Terminal Velocity",
		Category:    "Mechanics",
		Description: "Quadratic drag saturating a falling body's speed",
		Long: "Drag grows with v² until it balances weight. The speed follows " +
			"v_t tanh(gt/v_t) and the acceleration fades to zero.",
		Color:  "#73daca",
		Schema: sims.TerminalVelocitySchema,
	}, func() Factory { return sims.NewTerminalVelocity })

	register(SimulationConfig{
		Slug:        "wave-interference",
		Title:       "Wave Interference",
		Category:    "Waves",
		Description: "Two-source ripple tank with constructive and destructive bands",
		Long: "Two coherent sources overlap. Where crest meets crest the water " +
			"doubles; where crest meets trough it cancels.",
		Color:  "#7aa2f7",
		Schema: sims.WaveInterferenceSchema,
	}, func() Factory { return sims.NewWaveInterference })

	register(SimulationConfig{
		Slug:        "standing-wave",
		Title:       "Standing Waves",
		Category:    "Waves",
		Description: "Harmonics on a fixed string with nodes and antinodes",
		Long: "Opposite-running waves of the same frequency lock into a pattern " +
			"that oscillates in place. The nth harmonic has n+1 nodes.",
		Color:  "#bb9af7",
		Schema: sims.StandingWaveSchema,
	}, func() Factory { return sims.NewStandingWave })

	register(SimulationConfig{
		Slug:        "doppler",
		Title:       "Doppler Effect",
		Category:    "Waves",
		Description: "Wavefronts bunching ahead of a moving source",
		Long: "A moving source crowds its wavefronts forward and stretches them " +
			"behind. At Mach 1 the fronts pile into a shock.",
		Color:  "#f7768e",
		Schema: sims.DopplerSchema,
	}, func() Factory { return sims.NewDoppler })

	register(SimulationConfig{
		Slug:        "beats",
		Title:       "Beats",
		Category:    "Waves",
		Description: "Slow amplitude envelope from two close frequencies",
		Long: "Two nearly equal tones drift in and out of phase. The loudness " +
			"pulses at exactly the difference frequency.",
		Color:  "#e0af68",
		Schema: sims.BeatsSchema,
	}, func() Factory { return sims.NewBeats })

	register(SimulationConfig{
		Slug:        "fourier-series",
		Title:       "Fourier Series",
		Category:    "Waves",
		Description: "Square wave built from odd-harmonic sines",
		Long: "Add sin(kx)/k for odd k and a square wave appears, complete with " +
			"the Gibbs overshoot at each jump.",
		Color:  "#9ece6a",
		Schema: sims.FourierSchema,
	}, func() Factory { return sims.NewFourier })

	register(SimulationConfig{
		Slug:        "lissajous",
		Title:       "Lissajous Figures",
		Category:    "Waves",
		Description: "Closed curves from perpendicular oscillations",
		Long: "x and y oscillate at different frequencies. Rational ratios close " +
			"the curve; the phase slider rotates it through its family.",
		Color:  "#7dcfff",
		Schema: sims.LissajousSchema,
	}, func() Factory { return sims.NewLissajous })

	register(SimulationConfig{
		Slug:        "dipole-field",
		Title:       "Dipole Field",
		Category:    "Electromagnetism",
		Description: "Field lines marched from a charge pair",
		Long: "Lines leave the positive charge, curve through space, and land on " +
			"the negative one. Line density encodes field strength.",
		Color:  "#ff9e64",
		Schema: sims.DipoleFieldSchema,
	}, func() Factory { return sims.NewDipoleField })

	register(SimulationConfig{
		Slug:        "rc-circuit",
		Title:       "RC Circuit",
		Category:    "Electromagnetism",
		Description: "Capacitor charging through a resistor, τ = RC",
		Long: "The capacitor voltage rises as V0(1−e^(−t/τ)). One time constant " +
			"reaches 63 percent; five are effectively full.",
		Color:  "#2ac3de",
		Schema: sims.RCCircuitSchema,
	}, func() Factory { return sims.NewRCCircuit })

	register(SimulationConfig{
		Slug:        "ideal-gas",
		Title:       "Ideal Gas",
		Category:    "Thermodynamics",
		Description: "Particles in a box relating pressure, volume and temperature",
		Long: "Wall collisions are pressure. Shrink the box or heat the gas and " +
			"watch PV track NkT.",
		Color:  "#9ece6a",
		Schema: sims.IdealGasSchema,
	}, func() Factory { return sims.NewIdealGas })

	register(SimulationConfig{
		Slug:        "brownian-motion",
		Title:       "Brownian Motion",
		Category:    "Thermodynamics",
		Description: "Random walks with √t mean displacement",
		Long: "Pollen grains jitter under unseen molecular kicks. Each path " +
			"wanders, but the ensemble spread grows like the square root of time.",
		Color:  "#73daca",
		Schema: sims.BrownianSchema,
	}, func() Factory { return sims.NewBrownian })

	register(SimulationConfig{
		Slug:        "half-life-period",
		Title:       "Half-Life Decay",
		Category:    "Modern Physics",
		Description: "Exponential decay, one half-life at a time",
		Long: "Every half-life, half the surviving nuclei decay, whichever ones " +
			"they are. N(t) = N0 · 2^(−t/T)",
		Color:  "#f7768e",
		Schema: sims.HalfLifeSchema,
	}, func() Factory { return sims.NewHalfLife })
}
