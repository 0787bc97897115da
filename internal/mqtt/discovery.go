package mqtt

import "fmt"

// Entity ids, used both as topic segments and unique_id suffixes.
const (
	entityLight            = "light"
	entityMicrophone       = "microphone"
	entityEffectSpeed      = "effect_speed"
	entityEffectBrightness = "effect_brightness"
	entityMicSensitivity   = "mic_sensitivity"
	entityMicEQ            = "mic_eq"
)

type discoveryDoc struct {
	topic   string
	payload map[string]any
}

// discovery builds the retained Home Assistant config documents for one
// strip.
func (b *Bridge) discovery(node string, s Session) []discoveryDoc {
	dev := map[string]any{
		"identifiers":  []string{"melk_led_" + node},
		"connections":  [][]string{{"mac", s.Address()}},
		"name":         s.Name(),
		"manufacturer": "MELK",
		"model":        "BLE LED strip",
	}
	base := func(entity, name string) map[string]any {
		return map[string]any{
			"name":               name,
			"unique_id":          fmt.Sprintf("melk_led_%s_%s", node, entity),
			"object_id":          fmt.Sprintf("melk_%s_%s", node, entity),
			"availability_topic": StatusTopic(b.opts.BaseTopic),
			"command_topic":      b.topic(node, entity, "set"),
			"state_topic":        b.topic(node, entity, "state"),
			"device":             dev,
		}
	}
	cfgTopic := func(component, entity string) string {
		return fmt.Sprintf("%s/%s/%s/%s/config", b.opts.DiscoveryPrefix, component, node, entity)
	}

	light := base(entityLight, "")
	light["name"] = nil // main entity takes the device name
	light["schema"] = "json"
	light["brightness"] = true
	light["brightness_scale"] = 255
	light["supported_color_modes"] = []string{"rgb"}
	light["effect"] = true
	light["effect_list"] = b.catalog.Labels()

	mic := base(entityMicrophone, "Microphone mode")
	mic["icon"] = "mdi:microphone"

	number := func(entity, name, icon string) map[string]any {
		doc := base(entity, name)
		doc["min"] = 0
		doc["max"] = 100
		doc["step"] = 1
		doc["mode"] = "slider"
		doc["icon"] = icon
		return doc
	}

	var eqOptions []string
	for _, m := range b.catalog.MicModes() {
		eqOptions = append(eqOptions, m.Label)
	}
	eq := base(entityMicEQ, "Microphone EQ mode")
	eq["options"] = eqOptions
	eq["icon"] = "mdi:equalizer"

	return []discoveryDoc{
		{cfgTopic("light", entityLight), light},
		{cfgTopic("switch", entityMicrophone), mic},
		{cfgTopic("number", entityEffectSpeed), number(entityEffectSpeed, "Effect speed", "mdi:speedometer")},
		{cfgTopic("number", entityEffectBrightness), number(entityEffectBrightness, "Effect brightness", "mdi:brightness-6")},
		{cfgTopic("number", entityMicSensitivity), number(entityMicSensitivity, "Microphone sensitivity", "mdi:microphone-settings")},
		{cfgTopic("select", entityMicEQ), eq},
	}
}
