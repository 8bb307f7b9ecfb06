// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package generate

// Words is the embedded passphrase dictionary. Entries are lowercase, contain
// no analyzer sequence, common word or keyboard walk, and are unique.
var Words = []string{
	"acorn", "actor", "adapt", "admit", "adobe", "agent", "alarm", "album",
	"alert", "algae", "alley", "alpha", "amber", "amend", "ample", "anchor",
	"angle", "ankle", "apple", "apron", "arbor", "arena", "argue", "armor",
	"aroma", "arrow", "artist", "aspen", "atlas", "attic", "audio", "autumn",
	"avenue", "award", "bacon", "badge", "bagel", "baker", "bamboo", "banjo",
	"barley", "basin", "basket", "beach", "beacon", "beard", "beetle", "bench",
	"berry", "bison", "blade", "blaze", "blend", "bloom", "board", "bonus",
	"border", "bottle", "boulder", "bounce", "bracket", "branch", "brave",
	"bread", "breeze", "brick", "bridge", "brisk", "broom", "brush", "bucket",
	"buddy", "bundle", "burrow", "butter", "cabin", "cable", "cactus", "camel",
	"candle", "canoe", "canyon", "carbon", "cargo", "carpet", "carrot",
	"castle", "cedar", "cello", "chalk", "charm", "cherry", "chess", "chimney",
	"cider", "cinder", "circus", "citrus", "civic", "clamp", "clever", "cliff",
	"climb", "clock", "cloud", "clover", "coast", "cobalt", "cocoa", "comet",
	"copper", "coral", "cotton", "cougar", "crane", "crater", "crayon", "creek",
	"cricket", "crisp", "crown", "cubic", "cupid", "curtain", "cycle", "daisy",
	"dancer", "delta", "denim", "desert", "diesel", "dingo", "dinner",
	"dolphin", "donut", "dough", "dozen", "drift", "drum", "dune", "eagle",
	"easel", "echo", "eclipse", "elbow", "elder", "ember", "emerald", "engine",
	"entry", "envoy", "epoch", "equal", "ether", "fabric", "falcon", "feast",
	"fender", "fern", "ferry", "fiber", "field", "finch", "fjord", "flame",
	"flannel", "flask", "fleet", "flint", "flora", "flute", "focus", "forest",
	"fossil", "fountain", "fox", "frost", "fruit", "fudge", "galaxy", "garden",
	"garlic", "gecko", "geyser", "ginger", "glacier", "glade", "glider",
	"globe", "glove", "goblet", "golden", "gopher", "gourd", "grain", "granite",
	"grape", "gravel", "grove", "guitar", "gully", "habit", "hammer", "harbor",
	"harvest", "hazel", "heron", "hickory", "hollow", "honey", "horizon",
	"hornet", "husky", "igloo", "indigo", "inlet", "iris", "island", "ivory",
	"jacket", "jaguar", "jasmine", "jelly", "jersey", "jewel", "jigsaw",
	"jockey", "juggle", "jungle", "juniper", "kayak", "kernel", "kettle",
	"kiwi", "koala", "ladder", "lagoon", "lantern", "larch", "laser", "lava",
	"legend", "lemon", "lentil", "lilac", "linen", "lizard", "llama", "lobster",
	"locket", "lotus", "lunar", "lynx", "magnet", "mango", "maple", "marble",
	"marsh", "meadow", "melon", "mentor", "meteor", "mint", "mirror", "mocha",
	"molar", "monsoon", "mosaic", "moss", "muffin", "mural", "mustard",
	"nectar", "needle", "nickel", "noble", "nomad", "nougat", "nugget", "oasis",
	"ocean", "olive", "onion", "opal", "orbit", "orchid", "otter", "outlet",
	"oyster", "paddle", "palm", "panda", "paper", "parade", "parrot", "pasta",
	"pebble", "pecan", "pepper", "piano", "pickle", "pigeon", "pillow", "pilot",
	"pine", "pixel", "planet", "plaza", "plum", "pocket", "polar", "pony",
	"poppy", "portal", "pretzel", "prism", "puffin", "pulse", "pumpkin",
	"quartz", "quill", "quiver", "rabbit", "radar", "radish", "raft", "raven",
	"reef", "relic", "rhythm", "ribbon", "ridge", "river", "robin", "rocket",
	"rodeo", "rover", "ruby", "saddle", "safari", "salmon", "sandal", "satin",
	"scarf", "scout", "sequin", "sherbet", "shovel", "signal", "silver",
	"sketch", "sloth", "snowy", "socket", "sonnet", "spark", "spice", "spiral",
	"sponge", "spruce", "squid", "stable", "stereo", "summit", "sundial",
	"swan", "syrup", "tablet", "tango", "teapot", "temple", "thimble",
	"thistle", "thunder", "tiger", "timber", "toast", "topaz", "torch",
	"tractor", "trail", "tulip", "tundra", "turtle", "tuxedo", "umbra",
	"unicorn", "upland", "valley", "velvet", "violet", "vivid", "voyage",
	"waffle", "walnut", "walrus", "willow", "window", "winter", "wizard",
	"yacht", "yarrow", "yodel", "yogurt", "zebra", "zenith", "zephyr", "zigzag",
}
