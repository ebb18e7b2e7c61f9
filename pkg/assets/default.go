package assets

import "github.com/edulens/edulens/pkg/models"

// defaultTable is the built-in asset metadata, one record per taxonomy
// subject. Array order is declaration order for query tie-breaks.
var defaultTable = []models.ModelAsset{
	{
		SubjectID:           "heart",
		File:                "heart.glb",
		DisplayName:         "Human Heart",
		Category:            "biology",
		Difficulty:          models.DifficultyIntermediate,
		Animations:          []string{"heartbeat", "blood_flow", "valve_motion"},
		InteractiveFeatures: []string{"chamber_labels", "cross_section"},
		Tags:                []string{"anatomy", "cardiovascular", "organ"},
		Description:         "Anatomical heart with chambers, valves, and major vessels.",
		RecommendedAge:      "12+",
	},
	{
		SubjectID:           "cell",
		File:                "cell.glb",
		DisplayName:         "Animal Cell",
		Category:            "biology",
		Difficulty:          models.DifficultyBeginner,
		Animations:          []string{"organelle_tour", "membrane_transport"},
		InteractiveFeatures: []string{"organelle_labels", "zoom"},
		Tags:                []string{"cell biology", "organelle", "microscopic"},
		Description:         "Animal cell showing the nucleus, cytoplasm, and organelles.",
		RecommendedAge:      "10+",
	},
	{
		SubjectID:           "dna",
		File:                "dna.glb",
		DisplayName:         "DNA Double Helix",
		Category:            "biology",
		Difficulty:          models.DifficultyIntermediate,
		Animations:          []string{"unwind", "replication", "base_pairing"},
		InteractiveFeatures: []string{"base_labels", "rotate"},
		Tags:                []string{"genetics", "molecule", "heredity"},
		Description:         "Double helix DNA strand with labeled base pairs.",
		RecommendedAge:      "12+",
	},
	{
		SubjectID:           "water_molecule",
		File:                "water_molecule.glb",
		DisplayName:         "Water Molecule",
		Category:            "chemistry",
		Difficulty:          models.DifficultyBeginner,
		Animations:          []string{"vibration", "hydrogen_bonding"},
		InteractiveFeatures: []string{"bond_angles", "charge_overlay"},
		Tags:                []string{"molecule", "covalent bond", "polarity"},
		Description:         "H2O molecule showing bond geometry and polarity.",
		RecommendedAge:      "10+",
	},
	{
		SubjectID:           "atom",
		File:                "atom.glb",
		DisplayName:         "Atom Model",
		Category:            "chemistry",
		Difficulty:          models.DifficultyBeginner,
		Animations:          []string{"electron_orbit", "shell_fill"},
		InteractiveFeatures: []string{"particle_labels", "element_picker"},
		Tags:                []string{"atomic structure", "electron", "nucleus"},
		Description:         "Bohr-style atom with nucleus and electron shells.",
		RecommendedAge:      "10+",
	},
	{
		SubjectID:           "lever",
		File:                "lever.glb",
		DisplayName:         "Lever",
		Category:            "physics",
		Difficulty:          models.DifficultyBeginner,
		Animations:          []string{"balance", "load_lift"},
		InteractiveFeatures: []string{"adjustable_fulcrum", "force_arrows"},
		Tags:                []string{"simple machine", "mechanics", "force"},
		Description:         "First-class lever demonstrating mechanical advantage.",
		RecommendedAge:      "8+",
	},
	{
		SubjectID:           "circuit",
		File:                "ac_circuit.glb",
		DisplayName:         "AC Circuit",
		Category:            "physics",
		Difficulty:          models.DifficultyAdvanced,
		Animations:          []string{"current_flow", "waveform"},
		InteractiveFeatures: []string{"component_labels", "frequency_slider"},
		Tags:                []string{"electricity", "alternating current", "electronics"},
		Description:         "Alternating current circuit with source, resistor, and meter.",
		RecommendedAge:      "14+",
	},
	{
		SubjectID:           "mitochondria",
		File:                "mitochondria.glb",
		DisplayName:         "Mitochondrion",
		Category:            "biology",
		Difficulty:          models.DifficultyIntermediate,
		Animations:          []string{"atp_synthesis", "cristae_tour"},
		InteractiveFeatures: []string{"membrane_labels", "cross_section"},
		Tags:                []string{"cell biology", "organelle", "respiration"},
		Description:         "Mitochondrion with inner membrane folds and matrix.",
		RecommendedAge:      "12+",
	},
	{
		SubjectID:           "plant_cell",
		File:                "plant_cell.glb",
		DisplayName:         "Plant Cell",
		Category:            "biology",
		Difficulty:          models.DifficultyBeginner,
		Animations:          []string{"organelle_tour", "turgor_pressure"},
		InteractiveFeatures: []string{"organelle_labels", "compare_animal_cell"},
		Tags:                []string{"cell biology", "botany", "chloroplast"},
		Description:         "Plant cell with cell wall, vacuole, and chloroplasts.",
		RecommendedAge:      "10+",
	},
	{
		SubjectID:           "neuron",
		File:                "neuron.glb",
		DisplayName:         "Neuron",
		Category:            "biology",
		Difficulty:          models.DifficultyIntermediate,
		Animations:          []string{"action_potential", "synapse_firing"},
		InteractiveFeatures: []string{"structure_labels", "signal_trace"},
		Tags:                []string{"nervous system", "cell biology", "brain"},
		Description:         "Neuron with dendrites, axon, and synaptic terminals.",
		RecommendedAge:      "12+",
	},
	{
		SubjectID:           "circulation",
		File:                "circulation.glb",
		DisplayName:         "Circulatory System",
		Category:            "biology",
		Difficulty:          models.DifficultyIntermediate,
		Animations:          []string{"blood_flow", "oxygen_exchange"},
		InteractiveFeatures: []string{"vessel_labels", "flow_speed"},
		Tags:                []string{"anatomy", "cardiovascular", "body systems"},
		Description:         "Full-body blood circulation with arteries and veins.",
		RecommendedAge:      "12+",
	},
	{
		SubjectID:           "skeleton",
		File:                "skeleton.glb",
		DisplayName:         "Human Skeleton",
		Category:            "biology",
		Difficulty:          models.DifficultyBeginner,
		Animations:          []string{"joint_motion", "bone_highlight"},
		InteractiveFeatures: []string{"bone_labels", "pose"},
		Tags:                []string{"anatomy", "bones", "body systems"},
		Description:         "Articulated human skeleton with major bones labeled.",
		RecommendedAge:      "8+",
	},
	{
		SubjectID:           "digestion",
		File:                "digestion.glb",
		DisplayName:         "Digestive System",
		Category:            "biology",
		Difficulty:          models.DifficultyIntermediate,
		Animations:          []string{"peristalsis", "nutrient_absorption"},
		InteractiveFeatures: []string{"organ_labels", "food_trace"},
		Tags:                []string{"anatomy", "organs", "body systems"},
		Description:         "Digestive tract from mouth to intestines with organ detail.",
		RecommendedAge:      "10+",
	},
	{
		SubjectID:           "solar_system",
		File:                "solar_system.glb",
		DisplayName:         "Solar System",
		Category:            "astronomy",
		Difficulty:          models.DifficultyBeginner,
		Animations:          []string{"orbit", "rotation", "scale_tour"},
		InteractiveFeatures: []string{"planet_labels", "orbit_speed"},
		Tags:                []string{"planets", "space", "orbits"},
		Description:         "Sun and planets with orbital paths to relative scale.",
		RecommendedAge:      "8+",
	},
	{
		SubjectID:           "photosynthesis",
		File:                "photosynthesis.glb",
		DisplayName:         "Photosynthesis",
		Category:            "biology",
		Difficulty:          models.DifficultyIntermediate,
		Animations:          []string{"light_reaction", "gas_exchange"},
		InteractiveFeatures: []string{"stage_labels", "energy_trace"},
		Tags:                []string{"botany", "energy", "chloroplast"},
		Description:         "Leaf cross-section animating the photosynthesis cycle.",
		RecommendedAge:      "10+",
	},
	{
		SubjectID:           "periodic_table",
		File:                "periodic_table.glb",
		DisplayName:         "Periodic Table",
		Category:            "chemistry",
		Difficulty:          models.DifficultyIntermediate,
		Animations:          []string{"group_highlight", "trend_sweep"},
		InteractiveFeatures: []string{"element_details", "filter_by_group"},
		Tags:                []string{"elements", "atomic structure", "reference"},
		Description:         "Interactive periodic table with element properties.",
		RecommendedAge:      "12+",
	},
	{
		SubjectID:           "reaction",
		File:                "reaction.glb",
		DisplayName:         "Chemical Reaction",
		Category:            "chemistry",
		Difficulty:          models.DifficultyAdvanced,
		Animations:          []string{"bond_breaking", "energy_profile"},
		InteractiveFeatures: []string{"reactant_labels", "rate_slider"},
		Tags:                []string{"reactions", "energy", "molecules"},
		Description:         "Reaction between molecules with an energy profile curve.",
		RecommendedAge:      "14+",
	},
	{
		SubjectID:           "em_wave",
		File:                "em_wave.glb",
		DisplayName:         "Electromagnetic Wave",
		Category:            "physics",
		Difficulty:          models.DifficultyAdvanced,
		Animations:          []string{"propagation", "field_oscillation"},
		InteractiveFeatures: []string{"wavelength_slider", "spectrum_picker"},
		Tags:                []string{"waves", "light", "electromagnetism"},
		Description:         "Propagating EM wave with electric and magnetic fields.",
		RecommendedAge:      "14+",
	},
	{
		SubjectID:           "pulley",
		File:                "pulley.glb",
		DisplayName:         "Pulley System",
		Category:            "physics",
		Difficulty:          models.DifficultyBeginner,
		Animations:          []string{"load_lift", "rope_tension"},
		InteractiveFeatures: []string{"add_pulley", "force_arrows"},
		Tags:                []string{"simple machine", "mechanics", "force"},
		Description:         "Single and compound pulleys showing mechanical advantage.",
		RecommendedAge:      "8+",
	},
	{
		SubjectID:           "motor",
		File:                "motor.glb",
		DisplayName:         "Electric Motor",
		Category:            "physics",
		Difficulty:          models.DifficultyAdvanced,
		Animations:          []string{"rotor_spin", "field_lines"},
		InteractiveFeatures: []string{"part_labels", "current_slider"},
		Tags:                []string{"electricity", "magnetism", "machines"},
		Description:         "DC motor with commutator, brushes, and field magnets.",
		RecommendedAge:      "14+",
	},
}

// Default returns the built-in asset table.
func Default() *Mapper {
	m, err := NewMapper(defaultTable)
	if err != nil {
		// The built-in table is validated by tests; a failure here is a bug.
		panic(err)
	}
	return m
}
