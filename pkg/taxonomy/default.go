package taxonomy

import "github.com/edulens/edulens/pkg/models"

// defaultEntries is the built-in educational subject taxonomy. Prompts are
// phrased the way the text encoder was trained to see captions; the short
// subject ids are what the asset table keys on.
var defaultEntries = []models.LabelEntry{
	{SubjectID: "heart", Prompt: "anatomical heart", Category: "biology"},
	{SubjectID: "cell", Prompt: "human cell", Category: "biology"},
	{SubjectID: "dna", Prompt: "double helix DNA", Category: "biology"},
	{SubjectID: "water_molecule", Prompt: "water molecule H2O", Category: "chemistry"},
	{SubjectID: "atom", Prompt: "atom model", Category: "chemistry"},
	{SubjectID: "lever", Prompt: "lever physics", Category: "physics"},
	{SubjectID: "circuit", Prompt: "AC circuit", Category: "physics"},
	{SubjectID: "mitochondria", Prompt: "mitochondria organelle", Category: "biology"},
	{SubjectID: "plant_cell", Prompt: "plant cell structure", Category: "biology"},
	{SubjectID: "neuron", Prompt: "neuron cell", Category: "biology"},
	{SubjectID: "circulation", Prompt: "blood circulation system", Category: "biology"},
	{SubjectID: "skeleton", Prompt: "skeletal system bones", Category: "biology"},
	{SubjectID: "digestion", Prompt: "digestive system", Category: "biology"},
	{SubjectID: "solar_system", Prompt: "solar system planets", Category: "astronomy"},
	{SubjectID: "photosynthesis", Prompt: "photosynthesis process", Category: "biology"},
	{SubjectID: "periodic_table", Prompt: "periodic table elements", Category: "chemistry"},
	{SubjectID: "reaction", Prompt: "chemical reaction diagram", Category: "chemistry"},
	{SubjectID: "em_wave", Prompt: "electromagnetic wave", Category: "physics"},
	{SubjectID: "pulley", Prompt: "simple machine pulley", Category: "physics"},
	{SubjectID: "motor", Prompt: "electric motor diagram", Category: "physics"},
}

// Default returns the built-in subject taxonomy.
func Default() *Taxonomy {
	t, err := New(defaultEntries)
	if err != nil {
		// The built-in set is validated by tests; a failure here is a bug.
		panic(err)
	}
	return t
}
